package api

// Package api implements the HTTP client for the remote task backend. It
// attaches the session bearer token and a per-request correlation ID, decodes
// the uniform Result envelope every endpoint returns, and converts transport
// failures into typed errors the UI can map to user-facing messages.

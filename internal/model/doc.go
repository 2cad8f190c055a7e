package model

// Package model defines domain data structures shared across the app: tasks,
// the task status enum, users, and authentication payloads. JSON tags follow
// the backend wire contract, which uses Spanish member names.

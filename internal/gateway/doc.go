package gateway

// Package gateway maps screen-level operations onto backend endpoints. All
// gateways are stateless request/response mappers; the only state side effect
// in the package is AuthGateway.Login persisting a successful session. Task
// and user calls resolve the target user id from the session store at call
// time, not at construction.

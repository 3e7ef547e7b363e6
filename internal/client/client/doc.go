// Package client is the terminal client's connection to the ERP backend.
//
// # Overview
//
// GRPCClient wraps the typed ERPService client. It keeps the access and
// refresh tokens of the signed-in profile, injects the access token into
// every call through interceptors and, when the server answers that the
// token expired, refreshes the pair once and retries the call.
//
// # Error Handling
//
// gRPC status codes are mapped to sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrInvalidInput and
// ErrRateLimited. Invalid input keeps the server's message.
//
// # Streams
//
// SubscribeChat and JoinPresence block while delivering updates to a
// callback and return when the context ends or the stream breaks.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use; the token pair is guarded by a mutex
// so streams can run next to interactive calls.
package client

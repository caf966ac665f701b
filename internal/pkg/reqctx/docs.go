// Package reqctx provides a key/value store scoped to a single inbound request.
//
// A scope is opened with Run and travels with the context.Context passed to the
// callback, so every function and goroutine that receives that context (or one
// derived from it) sees the same values, while concurrent requests each see only
// their own scope. The scope is sealed and emptied when Run returns, including when
// the callback fails or panics.
//
// Outside a scope all reads report absence and all writes are silently ignored.
// This lets background jobs and tests call code that reads request metadata
// without opening a scope first.
//
// Well-known keys cover the correlation metadata captured by the HTTP adapter and
// the caller identity added by the auth middleware; typed accessors such as
// RequestID and UserID read them back.
package reqctx

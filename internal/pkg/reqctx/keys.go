package reqctx

import (
	"context"
	"time"
)

const (
	KeyRequestID   = "requestId"
	KeyEndpoint    = "endpoint"
	KeyClientIP    = "ipAddress"
	KeyUserAgent   = "userAgent"
	KeyStartTime   = "startTime"
	KeyAccessToken = "accessToken"
	KeyUserID      = "userId"
	KeyEmail       = "email"
)

func lookupString(ctx context.Context, key string) string {
	v, _ := Lookup[string](ctx, key)
	return v
}

func RequestID(ctx context.Context) string { return lookupString(ctx, KeyRequestID) }
func Endpoint(ctx context.Context) string { return lookupString(ctx, KeyEndpoint) }
func ClientIP(ctx context.Context) string { return lookupString(ctx, KeyClientIP) }
func UserAgent(ctx context.Context) string { return lookupString(ctx, KeyUserAgent) }
func AccessToken(ctx context.Context) string { return lookupString(ctx, KeyAccessToken) }
func UserID(ctx context.Context) string { return lookupString(ctx, KeyUserID) }
func Email(ctx context.Context) string { return lookupString(ctx, KeyEmail) }

// StartTime returns when the request scope was opened.
func StartTime(ctx context.Context) (time.Time, bool) {
	return Lookup[time.Time](ctx, KeyStartTime)
}

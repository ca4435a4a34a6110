package utils

import (
	"context"

	"github.com/mmdatafocus/grange_backend/appctx"
)

var (
	ContextKeyToken         = appctx.ContextKeyToken
	ContextKeyUserId        = appctx.ContextKeyUserId
	ContextKeyClientIP      = appctx.ContextKeyClientIP
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
	ContextKeyOperationName = appctx.ContextKeyOperationName
)

func GetTokenFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyToken)
}

// GetUserIdFromContext returns the authenticated principal id.
// A zero id is never a valid principal.
func GetUserIdFromContext(ctx context.Context) (int, bool) {
	id, ok := appctx.GetInt(ctx, ContextKeyUserId)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

func GetClientIPFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyClientIP)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func GetOperationNameFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyOperationName)
}

func SetTokenInContext(ctx context.Context, token string) context.Context {
	return appctx.Set(ctx, ContextKeyToken, token)
}

func SetUserIdInContext(ctx context.Context, userId int) context.Context {
	return appctx.Set(ctx, ContextKeyUserId, userId)
}

func SetClientIPInContext(ctx context.Context, ip string) context.Context {
	return appctx.Set(ctx, ContextKeyClientIP, ip)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}

func SetOperationNameInContext(ctx context.Context, name string) context.Context {
	return appctx.Set(ctx, ContextKeyOperationName, name)
}

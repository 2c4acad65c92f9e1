package utils

import "context"

type contextKey string

const AdminUserKey contextKey = "admin_user"

// SetAdminContext records the authenticated admin on the request context.
func SetAdminContext(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, AdminUserKey, user)
}

// GetAdminFromContext returns the authenticated admin, if any.
func GetAdminFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(AdminUserKey).(string)
	return user, ok && user != ""
}

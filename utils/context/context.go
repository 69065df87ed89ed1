package context

import (
	"context"

	"github.com/Sanushoffl/toteebags/constant"
)

func GetSubject(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}

func IsAdmin(ctx context.Context) bool {
	subject, ok := GetSubject(ctx)
	return ok && subject == constant.AdminSubject
}

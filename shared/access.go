package shared

import (
	"context"

	"lodgehub/shared/constant"
	"lodgehub/shared/failure"
)

// CheckLodgeAccess rejects callers bound to another lodge. Superadmins reach every lodge.
func CheckLodgeAccess(ctx context.Context, lodgeID int64) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleSuperAdmin {
		return nil
	}

	own, _ := ctx.Value(constant.ContextKeyLodgeID).(int64)
	if own == 0 || own != lodgeID {
		return failure.ForbiddenError
	}

	return nil
}

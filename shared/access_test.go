package shared_test

import (
	"context"
	"testing"

	"lodgehub/shared"
	"lodgehub/shared/constant"
	"lodgehub/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestCheckLodgeAccess(t *testing.T) {
	withClaims := func(role string, lodgeID int64) context.Context {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, role)

		return context.WithValue(ctx, constant.ContextKeyLodgeID, lodgeID)
	}

	tests := []struct {
		name    string
		ctx     context.Context
		lodgeID int64
		wantErr bool
	}{
		{
			name:    "superadmin reaches any lodge",
			ctx:     withClaims(constant.RoleSuperAdmin, 0),
			lodgeID: 42,
		},
		{
			name:    "staff on own lodge",
			ctx:     withClaims(constant.RoleStaff, 6),
			lodgeID: 6,
		},
		{
			name:    "admin on another lodge",
			ctx:     withClaims(constant.RoleAdmin, 6),
			lodgeID: 7,
			wantErr: true,
		},
		{
			name:    "staff without lodge claim",
			ctx:     withClaims(constant.RoleStaff, 0),
			lodgeID: 6,
			wantErr: true,
		},
		{
			name:    "anonymous context",
			ctx:     context.Background(),
			lodgeID: 6,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.CheckLodgeAccess(tt.ctx, tt.lodgeID)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, failure.ForbiddenError)
			assert.Equal(t, 403, failure.GetCode(err))
		})
	}
}

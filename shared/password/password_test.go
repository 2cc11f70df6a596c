package password_test

import (
	"strings"
	"testing"

	"lodgehub/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "staff password", plain: "front-desk-2025"},
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt allows", plain: strings.Repeat("a", 73), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.plain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, hash)
			assert.NoError(t, password.Verify(tt.plain, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("front-desk-2025")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "front-desk-2025", hash: hash},
		{name: "mismatch", plain: "front-desk-2024", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "front-desk-2025", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "corrupt hash", plain: "front-desk-2025", hash: "not-a-bcrypt-hash", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("front-desk-2025")
	require.NoError(t, err)

	second, err := password.Hash("front-desk-2025")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

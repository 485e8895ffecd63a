package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/auth"
	"storefront/internal/domain"
)

func TestRegister(t *testing.T) {
	users := auth.New()

	require.NoError(t, users.Register(domain.User{ID: "u1", Username: "alice", Password: "alice123", Role: domain.RoleCustomer}))

	err := users.Register(domain.User{ID: "u2", Username: "alice", Password: "other", Role: domain.RoleCustomer})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = users.Register(domain.User{ID: "u3", Username: "", Password: "pw", Role: domain.RoleCustomer})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	users := auth.New()
	require.NoError(t, users.Register(domain.User{ID: "u1", Username: "alice", Password: "alice123", Role: domain.RoleCustomer}))

	tests := []struct {
		name      string
		username  string
		password  string
		wantError bool
	}{
		{
			name:     "valid credentials: ok",
			username: "alice",
			password: "alice123",
		},
		{
			name:      "wrong password",
			username:  "alice",
			password:  "wrong",
			wantError: true,
		},
		{
			name:      "unknown user",
			username:  "mallory",
			password:  "alice123",
			wantError: true,
		},
		{
			name:      "empty credentials",
			username:  "",
			password:  "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := users.Login(tt.username, tt.password)
			if tt.wantError {
				require.ErrorIs(t, err, domain.ErrAuthentication)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "u1", u.ID)
			assert.Equal(t, domain.RoleCustomer, u.Role)
		})
	}
}

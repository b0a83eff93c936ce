package monitoring

import (
	"testing"

	"github.com/roadwatch/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("jdoe", "hashed-secret", "Jane Doe", "jdoe@example.com", UserRoleOperator)
	require.NoError(t, err)

	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, UserRoleOperator, user.Role)
	assert.Nil(t, user.LastLogin)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Zero(t, user.ID, "ID is assigned by the store, not the constructor")
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		fullName string
		role     UserRole
		wantCode string
	}{
		{"empty username", "", "pw", "Name", UserRoleViewer, "INVALID_USERNAME"},
		{"whitespace username", "   ", "pw", "Name", UserRoleViewer, "INVALID_USERNAME"},
		{"empty password", "user", "", "Name", UserRoleViewer, "INVALID_PASSWORD"},
		{"empty full name", "user", "pw", "", UserRoleViewer, "INVALID_NAME"},
		{"unknown role", "user", "pw", "Name", UserRole("superuser"), "INVALID_ROLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.password, tt.fullName, "a@b.c", tt.role)
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestUserRecordLogin(t *testing.T) {
	user, err := NewUser("jdoe", "pw", "Jane Doe", "jdoe@example.com", UserRoleAdmin)
	require.NoError(t, err)
	require.Nil(t, user.LastLogin)

	user.RecordLogin()
	require.NotNil(t, user.LastLogin)
	assert.True(t, user.IsAdmin())
}

package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fds-bd/fds-server/internal/domain"
)

func TestUserJWTRoundTrip(t *testing.T) {
	key := []byte("super secret key")

	token, err := GenerateUserJWT("1", domain.RoleAccountant, time.Hour, key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, validateErr := ValidateUserJWT(token, key)
	require.NoError(t, validateErr)
	assert.Equal(t, "1", claims.ID)
	assert.Equal(t, domain.RoleAccountant, claims.Role)
}

func TestValidateUserJWTWrongKey(t *testing.T) {
	token, err := GenerateUserJWT("1", domain.RoleMember, time.Hour, []byte("key one"))
	require.NoError(t, err)

	_, validateErr := ValidateUserJWT(token, []byte("key two"))
	assert.Error(t, validateErr)
}

func TestValidateUserJWTExpired(t *testing.T) {
	key := []byte("super secret key")

	token, err := GenerateUserJWT("1", domain.RoleMember, -time.Minute, key)
	require.NoError(t, err)

	_, validateErr := ValidateUserJWT(token, key)
	assert.ErrorIs(t, validateErr, ErrTokenExpired)
}

func TestValidateUserJWTGarbage(t *testing.T) {
	_, err := ValidateUserJWT("not-a-token", []byte("super secret key"))
	assert.Error(t, err)
}

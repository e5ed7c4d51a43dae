package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"institute_backend/internal/model"
)

func TestParseJWT(t *testing.T) {
	token, err := GenerateJWT(7, model.Admin, "a@test.test", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.Admin, claims.Role)

	_, err = ParseJWT(token, "other")
	assert.Error(t, err)

	expired, err := GenerateJWT(7, model.Admin, "a@test.test", "secret", -time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err)
}

func TestParseOptionalUint(t *testing.T) {
	v, err := ParseOptionalUint("")
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalUint("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), *v)

	for _, bad := range []string{"0", "-1", "abc"} {
		_, err = ParseOptionalUint(bad)
		assert.ErrorIs(t, err, ErrInvalidScope, bad)
	}
}

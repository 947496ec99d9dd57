package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckAdminPasswordPlain(t *testing.T) {
	assert.True(t, CheckAdminPassword("", "letmein", "letmein"))
	assert.False(t, CheckAdminPassword("", "letmein", "LetMeIn"))
	assert.False(t, CheckAdminPassword("", "", ""))
	assert.False(t, CheckAdminPassword("", "letmein", ""))
}

func TestCheckAdminPasswordHash(t *testing.T) {
	raw, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(raw)

	assert.True(t, CheckAdminPassword(hash, "", "letmein"))
	assert.False(t, CheckAdminPassword(hash, "letmein", "wrong"))
}

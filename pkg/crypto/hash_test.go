package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", string(hash))

	assert.NoError(t, CheckPassword(hash, "correct horse"))
	assert.Error(t, CheckPassword(hash, "battery staple"))
	assert.Error(t, CheckPassword([]byte("plaintext"), "plaintext"))
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("s3cret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "s3cret-password", digest)

	assert.True(t, h.Verify("s3cret-password", digest))
	assert.False(t, h.Verify("wrong-password", digest))
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("same-password")
	assert.NoError(t, err)
	second, err := h.Hash("same-password")
	assert.NoError(t, err)

	// salted digests differ, but both verify
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher()

	assert.False(t, h.Verify("anything", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("anything", ""))
}

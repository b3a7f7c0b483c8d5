package user

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_SaltChangesDigest(t *testing.T) {
	h := SHA256Hasher{}

	s1 := h.NewSalt()
	s2 := h.NewSalt()
	require.NotEqual(t, s1, s2)

	assert.NotEqual(t, h.Hash("senha", s1), h.Hash("senha", s2))
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher{}

	assert.Equal(t, h.Hash("senha", "salt"), h.Hash("senha", "salt"))
}

func TestSHA256Hasher_HexOutput(t *testing.T) {
	h := SHA256Hasher{}

	digest := h.Hash("senha", h.NewSalt())
	assert.Len(t, digest, 64)
	_, err := hex.DecodeString(digest)
	assert.NoError(t, err)

	salt := h.NewSalt()
	assert.Len(t, salt, 32)
	_, err = hex.DecodeString(salt)
	assert.NoError(t, err)
}

func TestArgon2Hasher_SaltChangesDigest(t *testing.T) {
	h := Argon2Hasher{}

	s1 := h.NewSalt()
	s2 := h.NewSalt()
	require.NotEqual(t, s1, s2)

	assert.NotEqual(t, h.Hash("senha", s1), h.Hash("senha", s2))
	assert.Equal(t, h.Hash("senha", s1), h.Hash("senha", s1))
}

func TestHashers_SchemesDiffer(t *testing.T) {
	salt := "00112233445566778899aabbccddeeff"

	assert.NotEqual(t, SHA256Hasher{}.Hash("senha", salt), Argon2Hasher{}.Hash("senha", salt))
}

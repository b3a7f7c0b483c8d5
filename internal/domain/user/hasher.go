package user

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// Hasher produces per-account salts and salted password digests.
type Hasher interface {
	NewSalt() string
	Hash(password, salt string) string
}

// SHA256Hasher is the scheme the original mobile app used: hex SHA-256 of
// password concatenated with a random uuid-hex salt. It is not a password
// KDF; it is kept as the default so existing account files stay valid.
type SHA256Hasher struct{}

func (SHA256Hasher) NewSalt() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

func (SHA256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// Argon2Hasher derives the digest with argon2id. Opt-in via HASH_SCHEME;
// digests are incompatible with the sha256 scheme, so switching schemes on
// an existing account file locks those accounts out.
type Argon2Hasher struct{}

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

func (Argon2Hasher) NewSalt() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

func (Argon2Hasher) Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return hex.EncodeToString(key)
}

package password

import "errors"

var (
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrEmptyHash     = errors.New("hash cannot be empty")
)

// MigratingHasher hashes with bcrypt and still verifies legacy digests when allowed.
type MigratingHasher struct {
	bcrypt       Bcrypt
	acceptLegacy bool
}

func NewMigratingHasher(cost int, acceptLegacy bool) *MigratingHasher {
	return &MigratingHasher{
		bcrypt:       NewBcrypt(cost),
		acceptLegacy: acceptLegacy,
	}
}

func (h *MigratingHasher) HashPassword(password string) (string, error) {
	return h.bcrypt.HashPassword(password)
}

func (h *MigratingHasher) CheckPassword(password, hash string) (bool, error) {
	if password == "" {
		return false, ErrEmptyPassword
	}
	if hash == "" {
		return false, ErrEmptyHash
	}
	if isBcryptHash(hash) {
		return h.bcrypt.CheckPassword(password, hash)
	}
	if h.acceptLegacy && isLegacyDigest(hash) {
		return checkLegacy(password, hash), nil
	}
	return false, nil
}

func (h *MigratingHasher) NeedsRehash(hash string) bool {
	if !isBcryptHash(hash) {
		return true
	}
	return h.bcrypt.NeedsRehash(hash)
}

var (
	_ Hasher = (*MigratingHasher)(nil)
	_ Hasher = (*Bcrypt)(nil)
)

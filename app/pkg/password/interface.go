package password

type Hasher interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) (bool, error)
	// NeedsRehash reports whether a stored hash should be replaced on the next successful login.
	NeedsRehash(hash string) bool
}

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into digests that are safe to
// persist and checks candidates against them. It knows nothing about
// students, HTTP or storage.
type PasswordHasher interface {
	// Hash returns a salted digest of password with the work factor embedded.
	// Hashing the same password twice yields different digests. Only the
	// first MaxPasswordBytes bytes are significant.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A mismatch, including
	// an empty password, is (false, nil). A digest that cannot be parsed
	// yields ErrMalformedDigest.
	Verify(password, digest string) (bool, error)
}

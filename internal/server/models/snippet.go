package models

// Snippet is a stored piece of source code. The store holds only the
// encrypted form of the code; plaintext never leaves the service boundary
// unencrypted at rest.
type Snippet struct {
	ID          int64
	Language    string
	Ciphertext  string
	Description string
}

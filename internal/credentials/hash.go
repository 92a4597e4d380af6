package credentials

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Delimiter separates login and hash within a record.
const Delimiter = ":"

// HashPassword returns the lowercase hex SHA-256 digest of password.
// The digest is unsalted; changing that would change the file format.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// ValidLogin reports whether login can be stored without corrupting the
// file: it must be non-empty and contain neither the delimiter nor a line
// break.
func ValidLogin(login string) bool {
	return login != "" && !strings.ContainsAny(login, Delimiter+"\r\n")
}

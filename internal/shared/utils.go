// Package shared provides secure memory wiping for secrets read from the
// terminal.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Callers defer it right after reading a password so the plaintext does not
// outlive the request.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

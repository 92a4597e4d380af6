// Package credentials implements the flat-file credential store.
//
// The file holds one record per line, "login:hash\n", where hash is the
// hex-encoded SHA-256 of the password. There is no header, no salt and no
// escaping, so logins may not contain ':' or line breaks. Records are
// append-only: registration adds a line, nothing ever rewrites one.
//
// Register and Verify each open, read (and for Register append to) and close
// the file within a single call. A mutex serialises them so the uniqueness
// check and the append of one Register can never interleave with another.
package credentials

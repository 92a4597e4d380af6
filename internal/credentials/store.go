package credentials

import (
	"context"
	"crypto/subtle"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/ecocity/internal/filex"
	"github.com/dmitrijs2005/ecocity/internal/logging"
)

// Store is the contract the session layer needs from a credential store.
//
// Register and Verify answer with a plain bool; the error is reserved for
// ErrIOFailure conditions and is never used to say "login taken" or
// "wrong password".
type Store interface {
	Initialize(ctx context.Context) error
	Register(ctx context.Context, login string, password []byte) (bool, error)
	Verify(ctx context.Context, login string, password []byte) (bool, error)
}

// FileStore is the Store backed by a single text file.
type FileStore struct {
	path   string
	logger logging.Logger
	mu     sync.Mutex
}

// NewFileStore returns a store for path. Call Initialize before first use.
func NewFileStore(path string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &FileStore{path: path, logger: logger.With("module", "credentials")}
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

// Initialize creates the file (and its directory) when it does not exist.
// Existing content is left untouched, so calling it again is harmless.
func (s *FileStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := filex.EnsureParentDir(s.path); err != nil {
		return &StoreError{Op: "init", Path: s.path, Err: err}
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return &StoreError{Op: "init", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StoreError{Op: "init", Path: s.path, Err: err}
	}

	s.logger.Debug(ctx, "credential store ready", "path", s.path)
	return nil
}

// Register appends a record for login unless the login is invalid, the
// password is empty or the login is already present.
func (s *FileStore) Register(ctx context.Context, login string, password []byte) (bool, error) {
	if !ValidLogin(login) || len(password) == 0 {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return false, err
	}

	exists := false
	scanRecords(data, func(l, _ string) bool {
		if l == login {
			exists = true
			return false
		}
		return true
	})
	if exists {
		s.logger.Debug(ctx, "login already registered", "login", login)
		return false, nil
	}

	var rec strings.Builder
	if len(data) > 0 && data[len(data)-1] != '\n' {
		rec.WriteByte('\n')
	}
	rec.WriteString(login)
	rec.WriteString(Delimiter)
	rec.WriteString(HashPassword(password))
	rec.WriteByte('\n')

	if err := s.append(rec.String()); err != nil {
		return false, err
	}

	s.logger.Info(ctx, "user registered", "login", login)
	return true, nil
}

// Verify reports whether a record with this login and the hash of password
// exists. An unknown login and a wrong password give the same answer.
func (s *FileStore) Verify(ctx context.Context, login string, password []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return false, err
	}

	candidate := []byte(HashPassword(password))
	found := false
	scanRecords(data, func(l, hash string) bool {
		if l == login && subtle.ConstantTimeCompare([]byte(hash), candidate) == 1 {
			found = true
			return false
		}
		return true
	})
	return found, nil
}

func (s *FileStore) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StoreError{Op: "read", Path: s.path, Err: err}
	}
	return data, nil
}

func (s *FileStore) append(record string) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return &StoreError{Op: "append", Path: s.path, Err: err}
	}
	if _, err := f.WriteString(record); err != nil {
		_ = f.Close()
		return &StoreError{Op: "append", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StoreError{Op: "append", Path: s.path, Err: err}
	}
	return nil
}

// scanRecords calls fn for every well-formed record until fn returns false.
// Lines without a delimiter or with an empty login are skipped; only the
// first delimiter splits.
func scanRecords(data []byte, fn func(login, hash string) bool) {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		login, hash, ok := strings.Cut(line, Delimiter)
		if !ok || login == "" {
			continue
		}
		if !fn(login, hash) {
			return
		}
	}
}

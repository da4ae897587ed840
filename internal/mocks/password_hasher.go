package mocks

import (
	"errors"
	"strings"
	"sync"

	"github.com/phrazzld/eventplan-api/internal/service/auth"
)

// FakeHashPrefix marks hashes produced by MockPasswordHasher.
const FakeHashPrefix = "fakehash$"

// MockPasswordHasher implements auth.PasswordHasher without bcrypt's cost,
// by prefixing and reversing the password.
type MockPasswordHasher struct {
	// HashFn and CompareFn override the default behavior when set
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	mu               sync.Mutex
	CompareCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if password == "" {
		return "", auth.ErrEmptyPassword
	}
	return FakeHashPrefix + reverse(password), nil
}

// Compare implements auth.PasswordHasher.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.mu.Lock()
	m.CompareCallCount++
	m.mu.Unlock()

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if !strings.HasPrefix(hashedPassword, FakeHashPrefix) {
		return errors.New("malformed hash")
	}
	if strings.TrimPrefix(hashedPassword, FakeHashPrefix) != reverse(password) {
		return auth.ErrPasswordMismatch
	}
	return nil
}

// Calls returns how many times Compare ran.
func (m *MockPasswordHasher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CompareCallCount
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

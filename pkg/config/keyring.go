package config

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

// Keyring abstracts the OS keyring so tests can substitute an in-memory
// implementation.
type Keyring interface {
	Set(service, user, value string) error
	Get(service, user string) (string, error)
	Delete(service, user string) error
}

// SystemKeyring stores secrets in the OS keyring (Keychain, Secret
// Service, Credential Manager).
type SystemKeyring struct{}

func (SystemKeyring) Set(service, user, value string) error {
	return keyring.Set(service, user, value)
}

func (SystemKeyring) Get(service, user string) (string, error) {
	value, err := keyring.Get(service, user)
	if err == keyring.ErrNotFound {
		return "", fmt.Errorf("key not found in keyring")
	}
	return value, err
}

func (SystemKeyring) Delete(service, user string) error {
	return keyring.Delete(service, user)
}

// MemoryKeyring is an in-memory keyring for tests.
type MemoryKeyring struct {
	entries map[string]string
}

// NewMemoryKeyring creates an empty in-memory keyring.
func NewMemoryKeyring() *MemoryKeyring {
	return &MemoryKeyring{entries: make(map[string]string)}
}

func (m *MemoryKeyring) Set(service, user, value string) error {
	m.entries[service+"/"+user] = value
	return nil
}

func (m *MemoryKeyring) Get(service, user string) (string, error) {
	value, ok := m.entries[service+"/"+user]
	if !ok {
		return "", fmt.Errorf("key not found in keyring")
	}
	return value, nil
}

func (m *MemoryKeyring) Delete(service, user string) error {
	delete(m.entries, service+"/"+user)
	return nil
}

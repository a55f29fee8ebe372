// Package localstore is the application's local storage: string values
// keyed by name, with JSON helpers for structured values.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mrlokans/bookcircle/internal/database/storage"
	"github.com/mrlokans/bookcircle/internal/entities"
)

// Backend is the key/value persistence used by Store.
type Backend interface {
	GetItem(key string) (*entities.StoredItem, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Keys() ([]string, error)
	Clear() error
}

var _ Backend = (*storage.Repository)(nil)

type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// GetItem returns the raw value for key. The boolean is false when nothing
// is stored under key.
func (s *Store) GetItem(key string) (string, bool, error) {
	item, err := s.backend.GetItem(key)
	if errors.Is(err, storage.ErrItemNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value, true, nil
}

func (s *Store) SetItem(key, value string) error {
	if err := s.backend.SetItem(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) RemoveItem(key string) error {
	if err := s.backend.RemoveItem(key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *Store) Keys() ([]string, error) {
	return s.backend.Keys()
}

// Clear removes every stored key.
func (s *Store) Clear() error {
	if err := s.backend.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// GetJSON decodes the value stored under key into out.
// Values are not validated beyond what json.Unmarshal requires.
func (s *Store) GetJSON(key string, out any) (bool, error) {
	raw, ok, err := s.GetItem(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func (s *Store) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.SetItem(key, string(data))
}

// Package storage provides key/value operations over the local_storage table.
//
// # Usage
//
//	repo := storage.NewRepository(db)
//	item, err := repo.GetItem("userBooks")
package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookcircle/internal/entities"
)

// ErrItemNotFound is returned when no value is stored under a key.
var ErrItemNotFound = errors.New("storage item not found")

// Repository handles all local storage database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new storage repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetItem retrieves an item by key.
func (r *Repository) GetItem(key string) (*entities.StoredItem, error) {
	var item entities.StoredItem
	err := r.db.Where("key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetItem creates or updates an item.
func (r *Repository) SetItem(key, value string) error {
	var item entities.StoredItem
	result := r.db.Where("key = ?", key).First(&item)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		item = entities.StoredItem{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&item).Error
	} else if result.Error != nil {
		return result.Error
	}

	item.Value = value
	return r.db.Save(&item).Error
}

// RemoveItem deletes an item by key. Removing a missing key is not an error.
func (r *Repository) RemoveItem(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.StoredItem{}).Error
}

// Keys lists every stored key in insertion order.
func (r *Repository) Keys() ([]string, error) {
	var keys []string
	err := r.db.Model(&entities.StoredItem{}).Order("id ASC").Pluck("key", &keys).Error
	return keys, err
}

// Clear removes every item.
func (r *Repository) Clear() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.StoredItem{}).Error
}

package entities

import (
	"time"
)

// StoredItem is one key/value entry of the persisted local storage.
// Value holds the JSON encoding of whatever was stored under Key.
type StoredItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoredItem) TableName() string {
	return "local_storage"
}

// Known storage keys
const (
	StorageKeyCurrentUser = "currentUser"
	StorageKeyAccessToken = "accessToken"
	StorageKeyUserBooks   = "userBooks"
)

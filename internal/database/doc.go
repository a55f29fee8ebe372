// Package database opens the SQLite file that backs local storage.
//
// The layout mirrors a browser's local storage: a single key/value table
// (see entities.StoredItem) where each value is a JSON document.
//
//	database/
//	├── database.go   # Connection setup and migrations
//	└── storage/      # Key/value repository over the local_storage table
//
// Typical wiring:
//
//	db, err := database.NewDatabase("./bookcircle.db")
//	repo := storage.NewRepository(db.DB)
//	store := localstore.New(repo)
package database

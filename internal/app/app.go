// Package app wires the local storage database and the three stores.
// The server and the CLI commands share it, so a reading list edited from
// the command line is the one the server rehydrates.
package app

import (
	"fmt"

	"github.com/mrlokans/bookcircle/internal/config"
	"github.com/mrlokans/bookcircle/internal/database"
	"github.com/mrlokans/bookcircle/internal/database/storage"
	"github.com/mrlokans/bookcircle/internal/fixtures"
	"github.com/mrlokans/bookcircle/internal/library"
	"github.com/mrlokans/bookcircle/internal/localstore"
	"github.com/mrlokans/bookcircle/internal/reviews"
	"github.com/mrlokans/bookcircle/internal/session"
)

type App struct {
	DB       *database.Database
	Storage  *localstore.Store
	Sessions *session.Store
	Library  *library.Store
	Reviews  *reviews.Store
}

// New opens the database at cfg.Database.Path and builds the stores.
// Each store restores its persisted state here.
func New(cfg *config.Config) (*App, error) {
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	ls := localstore.New(storage.NewRepository(db.DB))

	sessions, err := session.NewStore(ls, session.Config{
		DemoEmail:    cfg.Auth.DemoEmail,
		DemoPassword: cfg.Auth.DemoPassword,
		BcryptCost:   cfg.Auth.BcryptCost,
		LatencyScale: cfg.Latency.Scale,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	return &App{
		DB:       db,
		Storage:  ls,
		Sessions: sessions,
		Library: library.NewStore(ls, fixtures.Books(), library.Config{
			UserID:       fixtures.DemoUserID,
			LatencyScale: cfg.Latency.Scale,
		}),
		Reviews: reviews.NewStore(reviews.Config{LatencyScale: cfg.Latency.Scale}),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/plumline/claimdesk/internal/common"
	"github.com/plumline/claimdesk/internal/config"
	"github.com/plumline/claimdesk/internal/gateway"
	"github.com/plumline/claimdesk/internal/model"
	"github.com/plumline/claimdesk/internal/session"
	"github.com/plumline/claimdesk/internal/storage"
)

// deps bundles everything a command needs for one run.
type deps struct {
	settings   *config.Settings
	store      *storage.SQLiteStorage
	controller *session.Controller
	user       model.User
}

func (d *deps) close() {
	if d.store != nil {
		_ = d.store.Close()
	}
}

// setup wires config, storage, gateway and controller. Commands that need
// a logged-in user pass requireUser; admin surfaces additionally check the
// role themselves through the controller.
func setup(ctx context.Context, requireUser bool) (*deps, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(settings.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate local state: %w", err)
	}

	var user model.User
	saved, err := store.LoadUser(ctx)
	switch {
	case err == nil:
		user = *saved
	case errors.Is(err, common.ErrNoSavedSession):
		if requireUser {
			_ = store.Close()
			return nil, fmt.Errorf("not logged in; run 'claimdesk login' first")
		}
	default:
		_ = store.Close()
		return nil, err
	}

	gw, err := gateway.NewClient(settings.BackendURL)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	controller := session.NewController(session.Config{
		Gateway:   gw,
		Audit:     store,
		User:      user,
		AssetBase: settings.AssetBase,
	})

	return &deps{
		settings:   settings,
		store:      store,
		controller: controller,
		user:       user,
	}, nil
}

package main

import (
	"bufio"
	"context"
	"os"

	"ums-console/internal/config"
	"ums-console/internal/console"
	"ums-console/internal/directory"
	"ums-console/internal/localstore"
	"ums-console/internal/monitoring"
	"ums-console/internal/prefs"
	"ums-console/internal/session"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shared persistent store: Redis when reachable, in-memory
	// otherwise. The degraded mode keeps the console usable but
	// preferences and session stop being shared across contexts.
	var store localstore.Store
	redisStore, err := localstore.NewRedisStore(cfg.Store.Host, cfg.Store.Port, cfg.Store.Password, cfg.Store.DB)
	if err != nil {
		logrus.Warnf("shared store unavailable, falling back to in-memory: %v", err)
		store = localstore.NewMemoryStore()
	} else {
		defer redisStore.Close()
		store = redisStore
	}

	sess := session.NewAccessor(store)
	client := directory.NewClient(cfg.AuthService.BaseURL, cfg.AuthService.RequestTimeout, sess)
	repo := directory.NewRepository(client)

	sidebar := prefs.NewSidebarSync(store, cfg.Prefs.PollInterval)
	sidebar.Start(ctx)
	defer sidebar.Stop()

	monitoring.NewServer(cfg, repo.Cache()).Start()

	ui := console.New(repo, sess, sidebar, bufio.NewReader(os.Stdin))
	if err := ui.Run(ctx); err != nil {
		os.Exit(1)
	}
}

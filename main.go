package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/mbolis/quick-form/app"
	"github.com/mbolis/quick-form/config"
	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/machine"
	"github.com/mbolis/quick-form/repository"
	"github.com/mbolis/quick-form/routes"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	s, closeStore, err := app.OpenStore(cfg)
	if err != nil {
		log.Fatal("main.store.open:", err)
	}
	defer closeStore()

	repo := repository.New(s)

	var opts []machine.Option
	if cfg.PositionalUpdates {
		opts = append(opts, machine.WithPositionalUpdates())
	}
	m, err := machine.New(repo, opts...)
	if err != nil {
		log.Fatal("main.machine:", err)
	}

	session := app.NewSession(m)
	defer session.Close()

	app := app.App{
		Config:     cfg,
		Session:    session,
		Repository: repo,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Infof("Listening on %s (store: %s)", cfg.Url(), cfg.Store)
	return srv.ListenAndServe()
}

package app

import (
	"github.com/mbolis/quick-form/config"
	"github.com/mbolis/quick-form/database"
	"github.com/mbolis/quick-form/repository"
	"github.com/mbolis/quick-form/store"
)

type App struct {
	config.Config
	*Session
	Repository *repository.Repository
}

// OpenStore builds the persistence backend chosen by cfg. The returned
// close function releases it.
func OpenStore(cfg config.Config) (s store.Store, closeFn func() error, err error) {
	closeFn = func() error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		s = store.NewMemory()
	case config.StoreBolt:
		var b *store.Bolt
		b, err = store.OpenBolt(cfg.BoltPath)
		if err != nil {
			return
		}
		s, closeFn = b, b.Close
	default:
		var sqlStore *store.SQL
		sqlStore, closeFn, err = openSQL(cfg.DBUrl)
		if err != nil {
			return
		}
		s = sqlStore
	}

	if cfg.CacheSize > 0 {
		var cached *store.Cached
		cached, err = store.NewCached(s, cfg.CacheSize)
		if err != nil {
			closeFn()
			return
		}
		s = cached
	}
	return
}

func openSQL(path string) (*store.SQL, func() error, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return store.NewSQL(db), db.Close, nil
}

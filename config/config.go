package config

import (
	"flag"
	"fmt"
	"net"
	"regexp"
	"strconv"
)

const (
	StoreMemory = "memory"
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"
)

type Config struct {
	Addr              string
	Store             string
	DBUrl             string
	BoltPath          string
	CacheSize         int
	PositionalUpdates bool
	Debug             bool
}

// Parse reads the command line flags in args (without the program name).
func Parse(args []string) (cfg Config, err error) {
	flags := flag.NewFlagSet("quick-form", flag.ContinueOnError)

	var host string
	flags.StringVar(&host, "host", "0.0.0.0", "listen host name")
	var port uint
	flags.UintVar(&port, "port", 80, "listen port number")
	flags.StringVar(&cfg.Store, "store", StoreSQLite, "persistence backend: memory, bolt or sqlite")
	flags.StringVar(&cfg.DBUrl, "db-url", "qform.sqlite", "path to SQLite3 DB file")
	flags.StringVar(&cfg.BoltPath, "bolt-path", "qform.db", "path to bbolt DB file")
	flags.IntVar(&cfg.CacheSize, "cache-size", 0, "number of blobs kept in the LRU read cache (0 disables it)")
	flags.BoolVar(&cfg.PositionalUpdates, "positional-updates", false, "address edited responses by position instead of id")
	flags.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	err = flags.Parse(args)
	if err != nil {
		return
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	switch cfg.Store {
	case StoreMemory, StoreBolt, StoreSQLite:
	default:
		err = fmt.Errorf("invalid parameter -store %q", cfg.Store)
		return
	}
	if cfg.CacheSize < 0 {
		err = fmt.Errorf("invalid parameter -cache-size %d", cfg.CacheSize)
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

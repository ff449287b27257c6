package state

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/Paintersrp/cheats/internal/catalog"
	"github.com/Paintersrp/cheats/internal/config"
	"github.com/Paintersrp/cheats/internal/custom"
	"github.com/Paintersrp/cheats/internal/favorites"
	"github.com/Paintersrp/cheats/internal/frecency"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/logging"
	"github.com/Paintersrp/cheats/internal/notify"
	"github.com/Paintersrp/cheats/internal/offline"
	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/render"
)

// State carries the wired data layer shared by every command.
type State struct {
	Config    *config.Config
	Home      string
	DataDir   string
	Log       logging.Logger
	DB        *kv.DB
	Remote    *remote.Catalog
	Tokens    *remote.TokenStore
	Custom    *custom.Store
	Offline   *offline.Cache
	Favorites *favorites.Store
	Prefs     *prefs.Store
	Usage     *frecency.Tracker
	Catalog   *catalog.Merger
	Renderer  *render.Renderer
	Notify    *notify.Notifier
	Out       io.Writer
	Err       io.Writer
}

// Options are the root flags that shape the state.
type Options struct {
	ConfigPath string
	LogLevel   string
	// Ephemeral keeps all data in memory for the life of the process.
	Ephemeral bool
}

// Ready reports whether the state has been wired.
func (s *State) Ready() bool {
	return s != nil && s.Catalog != nil
}

// Load reads the config and wires the state in place. A state that is
// already wired is left untouched.
func (s *State) Load(opts Options) error {
	if s.Ready() {
		return nil
	}

	home, err := GetHomeDir()
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(home, opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		if err := config.ValidateLogLevel(opts.LogLevel); err != nil {
			return err
		}
		cfg.LogLevel = opts.LogLevel
	}

	var store kv.Store = kv.NewMemoryStore()
	dataDir := ""
	if !opts.Ephemeral {
		dataDir, err = cfg.ResolveDataDir()
		if err != nil {
			return fmt.Errorf("failed to resolve data directory: %w", err)
		}
		fs, err := kv.NewFileStore(dataDir)
		if err != nil {
			return err
		}
		store = fs
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}

	s.Home = home
	s.DataDir = dataDir
	s.Wire(cfg, store, logging.New(s.Err, cfg.LogLevel))
	return nil
}

// Wire builds every component over store. Commands and tests share it.
func (s *State) Wire(cfg *config.Config, store kv.Store, log logging.Logger) {
	if s.Out == nil {
		s.Out = io.Discard
	}
	if s.Err == nil {
		s.Err = io.Discard
	}

	db := kv.Open(store, log)
	p := prefs.NewStore(db)
	tokens := remote.NewTokenStore()

	cache := offline.NewCache(db, p,
		offline.WithLogger(log),
		offline.WithWorkers(cfg.Remote.DownloadWorkers),
	)
	rc := remote.New(cfg.Remote,
		remote.WithLogger(log),
		remote.WithOffline(cache, p),
		remote.WithTokenSource(tokens.Token),
	)

	stores := catalog.Stores{
		Custom:    custom.NewStore(db),
		Offline:   cache,
		Favorites: favorites.NewStore(db),
		Usage:     frecency.NewTracker(db),
		Prefs:     p,
	}

	s.Config = cfg
	s.Log = log
	s.DB = db
	s.Remote = rc
	s.Tokens = tokens
	s.Custom = stores.Custom
	s.Offline = cache
	s.Favorites = stores.Favorites
	s.Prefs = p
	s.Usage = stores.Usage
	s.Catalog = catalog.New(rc, stores, catalog.WithLogger(log))
	s.Renderer = render.New(cfg.Render)
	s.Notify = notify.New(s.Err)
}

func GetHomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig loads path, or the default config file under home when path
// is empty, creating it if needed.
func LoadConfig(home, path string) (*config.Config, error) {
	if path == "" {
		path = config.GetConfigPath(home)
	} else {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	if err := config.EnsureConfigExists(path); err != nil {
		return nil, err
	}

	return config.Load(path)
}

// Close releases resources held by the state.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.DB != nil {
		if c, ok := s.DB.Store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

package commands

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cleared-dev/spendwise/internal/categories"
	"github.com/cleared-dev/spendwise/internal/config"
	"github.com/cleared-dev/spendwise/internal/ledger"
	"github.com/cleared-dev/spendwise/internal/logger"
)

var errNoUser = errors.New("no user given: pass --user or set user.default in the config")

// session is everything a data command needs: resolved config, logger and
// an open store.
type session struct {
	cfg        *config.Config
	log        *zap.Logger
	store      ledger.Store
	catalog    *categories.Catalog
	user       string
	closeStore func() error
}

// resolveConfig layers .env, the config file, SPENDWISE_* variables and
// command-line flags, in increasing precedence.
func (o *globalOptions) resolveConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)

	if o.root != "" {
		cfg.Storage.Root = o.root
	}
	if o.format != "" {
		cfg.Storage.Format = o.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// open resolves configuration and opens the ledger store. needUser makes a
// missing username an error.
func (o *globalOptions) open(needUser bool) (*session, error) {
	cfg, err := o.resolveConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return nil, err
	}

	user := strings.TrimSpace(o.user)
	if user == "" {
		user = strings.TrimSpace(cfg.User.Default)
	}
	if needUser && user == "" {
		return nil, errNoUser
	}

	store, closeStore, err := ledger.Open(cfg.Storage.Format, cfg.Storage.Root, log)
	if err != nil {
		return nil, fmt.Errorf("opening ledger store: %w", err)
	}

	log.Debug("session opened",
		zap.String("root", cfg.Storage.Root),
		zap.String("format", cfg.Storage.Format),
		zap.String("user", user))

	return &session{
		cfg:        cfg,
		log:        log,
		store:      store,
		catalog:    categories.NewCatalog(cfg.Categories),
		user:       user,
		closeStore: closeStore,
	}, nil
}

// Close releases the store and flushes the logger.
func (s *session) Close() error {
	_ = s.log.Sync()
	return s.closeStore()
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"trail/pkg/accesslog"
	"trail/pkg/config"
	"trail/pkg/gitrepo"
)

// appEnv bundles everything a subcommand needs: the store, the repository
// resolver, configuration, and the invoking working directory. Tests
// pre-populate the fields; in production setup() fills whatever is nil from
// the default paths.
type appEnv struct {
	store    *accesslog.Store
	resolver gitrepo.Resolver
	cfg      *config.Config
	workdir  string
	dbPath   string
	now      func() time.Time

	// flag state, bound by the root command
	repoFlag string
	verbose  bool

	repoRootCache string
}

// setup resolves configuration and opens the store unless a test already
// injected them.
func (a *appEnv) setup(ctx context.Context) error {
	if a.now == nil {
		a.now = time.Now
	}
	if a.workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		a.workdir = wd
	}
	if a.resolver == nil {
		a.resolver = gitrepo.Git{}
	}
	if a.cfg == nil {
		path, err := userConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		a.cfg = &cfg
	}
	if a.store == nil {
		dbPath, err := stateDBPath(*a.cfg)
		if err != nil {
			return err
		}
		db, err := openDB(dbPath)
		if err != nil {
			return err
		}
		a.dbPath = dbPath
		a.store = accesslog.NewStore(db)
		a.store.SetHalfLifeDays(a.cfg.HalfLifeDays)
	}
	if err := a.store.Init(ctx); err != nil {
		return err
	}
	return nil
}

// repoRoot resolves the repository partition key: the --repo override when
// given, otherwise the Git root enclosing the working directory. The
// per-repo config overlay is applied as a side effect. The result is cached
// for the life of the invocation.
func (a *appEnv) repoRoot(ctx context.Context) (string, error) {
	if a.repoRootCache != "" {
		return a.repoRootCache, nil
	}

	var root string
	if a.repoFlag != "" {
		abs, err := filepath.Abs(a.repoFlag)
		if err != nil {
			return "", fmt.Errorf("resolve --repo %s: %w", a.repoFlag, err)
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		root = abs
	} else {
		resolved, err := a.resolver.Resolve(ctx, a.workdir)
		if err != nil {
			return "", err
		}
		root = resolved
	}

	cfg, err := config.ApplyRepoOverlay(*a.cfg, root)
	if err != nil {
		return "", err
	}
	*a.cfg = cfg
	a.store.SetHalfLifeDays(cfg.HalfLifeDays)

	a.repoRootCache = root
	return root, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/application/match"
	"github.com/younwookim/stickman/internal/application/system"
	"github.com/younwookim/stickman/internal/infrastructure/config"
	"github.com/younwookim/stickman/internal/infrastructure/logging"
	"github.com/younwookim/stickman/internal/infrastructure/remote"
	"github.com/younwookim/stickman/internal/infrastructure/scripting"
	"github.com/younwookim/stickman/internal/infrastructure/storage"
)

const saveTimeout = 2 * time.Second

// appOptions tune how the app is assembled for a command
type appOptions struct {
	logFile      string // log to this file instead of stderr
	needStore    bool   // fail when the ledger cannot be opened
	disableStore bool   // never open the ledger
}

// app holds everything a command needs to run matches
type app struct {
	runtime    *config.RuntimeConfig
	matchCfg   *config.MatchConfig
	log        *zap.Logger
	classifier system.BehaviorClassifier
	messenger  match.VictoryMessenger
	store      *storage.Store
	closers    []func()
}

// newApp loads configuration and builds the logger, rules backend and ledger
func newApp(ctx context.Context, runtimePath, matchDir, dbPath string, opts appOptions) (*app, error) {
	rt, err := config.LoadRuntime(runtimePath)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(rt.Logging, opts.logFile)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	a := &app{runtime: rt, log: log}
	a.closers = append(a.closers, func() { _ = log.Sync() })

	a.matchCfg, err = config.LoadMatchOrDefault(matchDir)
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.initRules(); err != nil {
		a.Close()
		return nil, err
	}

	if !opts.disableStore && (rt.Storage.Enabled || dbPath != "" || opts.needStore) {
		path := rt.Storage.Path
		if dbPath != "" {
			path = dbPath
		}
		store, err := storage.Open(ctx, path)
		switch {
		case err != nil && opts.needStore:
			a.Close()
			return nil, err
		case err != nil:
			log.Warn("results ledger unavailable", zap.String("path", path), zap.Error(err))
		default:
			a.store = store
			a.closers = append(a.closers, func() { _ = store.Close() })
		}
	}

	return a, nil
}

func newLogger(cfg config.LoggingConfig, file string) (*zap.Logger, error) {
	if file == "" {
		return logging.New(cfg)
	}
	path, err := expandHome(file)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return logging.NewFile(cfg, path)
}

// initRules picks the classifier and victory message backend
func (a *app) initRules() error {
	cfg := a.runtime.Classifier
	switch cfg.Backend {
	case "remote":
		client := remote.New(cfg.Endpoint, nil, a.log)
		a.classifier = client
		a.messenger = client
		a.log.Info("using remote rules service", zap.String("endpoint", cfg.Endpoint))
	default:
		engine, err := scripting.NewEngine(cfg.ScriptsDir, a.log)
		if err != nil {
			return fmt.Errorf("start lua rules: %w", err)
		}
		a.classifier = engine
		a.messenger = engine
		a.closers = append(a.closers, engine.Close)
		a.log.Info("using lua rules", zap.String("scripts", cfg.ScriptsDir))
	}
	return nil
}

// newMatch starts a match wired to the rules backend. Finished matches are
// written to the ledger when one is open.
func (a *app) newMatch() (*match.Match, error) {
	m, err := match.New(a.matchCfg, match.Deps{
		Classifier:  a.classifier,
		Messenger:   a.messenger,
		Logger:      a.log,
		MaxInFlight: a.runtime.Classifier.MaxInFlight,
		Timeout:     a.runtime.Classifier.Timeout,
	})
	if err != nil {
		return nil, err
	}
	if a.store != nil {
		m.OnFinish = a.recordResult
	}
	return m, nil
}

// recordResult saves a finished match. Failures are logged and swallowed.
func (a *app) recordResult(r match.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	id := uuid.NewString()
	_, err := a.store.SaveResult(ctx, storage.MatchResult{
		MatchID:    id,
		PlayerName: r.PlayerName,
		Outcome:    r.Outcome.String(),
		Score:      r.Score,
		Ticks:      r.Ticks,
	})
	if err != nil {
		a.log.Warn("failed to record result", zap.Error(err))
		return
	}
	a.log.Info("result recorded", zap.String("match_id", id))
}

// Close releases resources in reverse order of acquisition
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

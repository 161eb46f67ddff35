package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/config"
	"github.com/footballhub/cli/internal/logger"
	"github.com/footballhub/cli/internal/session"
	"github.com/footballhub/cli/internal/ui"
	"github.com/footballhub/cli/internal/workflow"
)

// app holds the wired dependencies for the lifetime of one invocation.
// The CLI is single-threaded between network calls, so plain fields are
// fine.
var app struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *session.Store
	jar    *session.Jar
	client *api.Client
	sess   *session.Manager
	router *workflow.Router
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "hub",
	Short: "Football Hub terminal client",
	Long: `hub is a terminal client for the Football Hub backend.

It renders players, teams, matches, trophies, trainers and the store as
terminal screens, and drives the notification workflows (team requests,
match invitations, stats submission, ratings) from the command line. All
state of record lives behind the backend; hub only keeps your session
cookie and resumable workflow context locally.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return bootstrap(cmd)
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if app.store != nil {
			_ = app.store.Close()
		}
	},
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.football-hub/config.yaml)")
}

// bootstrap wires config, logger, local store, API client and session, and
// restores the session from the persisted cookie.
func bootstrap(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config loading failed: %w", err)
	}
	app.cfg = cfg

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	app.log = appLogger

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0o755); err != nil {
		return fmt.Errorf("cache directory: %w", err)
	}
	store, err := session.Open(cfg.Cache.Path, appLogger)
	if err != nil {
		return fmt.Errorf("local store: %w", err)
	}
	app.store = store

	jar, err := session.NewJar(store, cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("cookie jar: %w", err)
	}
	app.jar = jar

	app.client = api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		Jar:     jar,
	}, appLogger)

	app.sess = session.NewManager(app.client, store, jar, appLogger)
	app.router = workflow.NewRouter(workflow.Deps{
		Players:  app.client,
		Teams:    app.client,
		Matches:  app.client,
		Trophies: app.client,
		Trainers: app.client,
		Market:   app.client,
		Bundles:  store,
	}, appLogger)

	// Fetch-profile-on-boot. A dead backend must not block local commands,
	// so a failed boot degrades to logged-out with a warning.
	if err := app.sess.Boot(cmd.Context()); err != nil {
		app.log.Warn().Err(err).Msg("session boot failed")
	}
	return nil
}

// requireLogin guards screens that need an authenticated session. The
// check is client-side; no request is made when it fails.
func requireLogin() error {
	if !app.sess.LoggedIn {
		return api.ErrUnauthorized
	}
	return nil
}

// fail renders the single toast every failed operation gets and propagates
// the error for the exit code. Field errors render inline underneath.
func fail(err error) error {
	ui.ToastError(os.Stdout, api.Message(err))
	for _, fe := range api.FieldErrors(err) {
		ui.InlineError(os.Stdout, fe.Field, fe.Message)
	}
	return err
}

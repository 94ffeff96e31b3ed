package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"countrydex/internal/app"
	"countrydex/internal/catalog"
	"countrydex/internal/config"
	"countrydex/internal/eventbus"
	"countrydex/internal/logging"
	"countrydex/internal/ui"
)

// rootOptions holds the flags shared by every command
type rootOptions struct {
	configPath string
	sourceURL  string
	timeout    int
	logFile    string
	logLevel   string
}

// Execute runs the root command with ctx, which is cancelled on SIGINT/SIGTERM
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the countrydex command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "countrydex",
		Short:         "Browse, search and favorite the countries of the world",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			return runTUI(cmd.Context(), e)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/countrydex/config.toml)")
	flags.StringVar(&opts.sourceURL, "source-url", "", "countries dataset URL")
	flags.IntVar(&opts.timeout, "timeout", 0, "dataset request timeout in seconds")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(newListCommand(opts), newConfigCommand(opts))
	return root
}

func (o *rootOptions) configPathOrDefault() string {
	if o.configPath == "" {
		return config.DefaultPath()
	}
	return o.configPath
}

// loadConfig reads the config through svc and applies the flags the user set
func (o *rootOptions) loadConfig(cmd *cobra.Command, svc config.ConfigService) (*config.Config, error) {
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("source-url") {
		cfg.Source.URL = o.sourceURL
	}
	if flags.Changed("timeout") {
		if o.timeout <= 0 {
			return nil, fmt.Errorf("--timeout must be positive, got %d", o.timeout)
		}
		cfg.Source.TimeoutSeconds = o.timeout
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

// env is what every command runs with
type env struct {
	cfg       *config.Config
	configSvc config.ConfigService
	logger    *zap.Logger
	bus       eventbus.EventBus
	unsub     func()
}

// setup builds the logger and event bus, then loads the effective config through the bus.
// The log settings live in the config file, so a first plain read is needed to build the logger.
func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	path := o.configPathOrDefault()

	boot, err := o.loadConfig(cmd, config.NewConfigService(path))
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(boot.Log.File, boot.Log.Level)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New(logger)
	e := &env{
		configSvc: config.NewConfigServiceWithBus(path, bus),
		logger:    logger,
		bus:       bus,
		unsub:     logging.SubscribeEvents(bus, logger),
	}
	if e.cfg, err = o.loadConfig(cmd, e.configSvc); err != nil {
		e.close()
		return nil, err
	}
	return e, nil
}

// close flushes pending events and the logger
func (e *env) close() {
	e.bus.Close()
	e.unsub()
	_ = e.logger.Sync()
}

// newLoader wires the HTTP source to store
func newLoader(cfg *config.Config, store *catalog.Store, logger *zap.Logger) *catalog.Loader {
	source := &catalog.HTTPSource{URL: cfg.Source.URL, Client: &http.Client{}}
	timeout := time.Duration(cfg.Source.TimeoutSeconds) * time.Second
	return catalog.NewLoader(source, store, timeout, logger)
}

func runTUI(ctx context.Context, e *env) error {
	cfg, logger, bus := e.cfg, e.logger, e.bus

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := catalog.NewStore()
	controller := app.NewController(app.Settings{
		InitialVisible: cfg.UI.InitialVisible,
		ShowMoreStep:   cfg.UI.ShowMoreStep,
	}, store, bus, logger)

	model := ui.NewModel(controller, logger, ui.Options{
		ToastDuration: time.Duration(cfg.UI.NotificationSeconds) * time.Second,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward catalog results to the UI goroutine
	forward := func(ev eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: ev})
	}
	defer bus.Subscribe(eventbus.EventCatalogLoaded, forward)()
	defer bus.Subscribe(eventbus.EventCatalogLoadFailed, forward)()

	svc := catalog.NewService(newLoader(cfg, store, logger), bus, cfg.Source.URL)
	go func() {
		if err := svc.Load(ctx); err != nil {
			logger.Warn("catalog load failed", zap.Error(err))
		}
	}()

	logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("UI interrupted")
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}

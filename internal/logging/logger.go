// Package logging builds the zap logger. Output goes to a file because stdout belongs to the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"countrydex/internal/eventbus"
)

const defaultLevel = "info"

// New constructs a JSON logger appending to path. An empty path yields a no-op logger.
func New(path, levelName string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(levelName)))); err != nil {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		NameKey:    "logger",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
	}

	cfg := zap.Config{
		Level:             level,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{path},
		ErrorOutputPaths:  []string{path},
		DisableStacktrace: true,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// SubscribeEvents records user-visible domain events in the log. It returns a func that unsubscribes.
func SubscribeEvents(bus eventbus.EventBus, logger *zap.Logger) func() {
	logger = logger.Named("events")
	unsubs := []func(){
		bus.Subscribe(eventbus.EventCatalogLoadStarted, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CatalogLoadStartedEvent); ok {
				logger.Info("catalog load started", zap.String("url", ev.URL))
			}
		}),
		bus.Subscribe(eventbus.EventFavoriteChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.FavoriteChangedEvent); ok {
				logger.Info("favorite changed",
					zap.String("name", ev.Name),
					zap.Bool("added", ev.Added),
					zap.Int("count", ev.Count))
			}
		}),
		bus.Subscribe(eventbus.EventSessionChanged, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.SessionChangedEvent); ok {
				logger.Info("session changed",
					zap.Stringer("from", ev.From),
					zap.Stringer("to", ev.To),
					zap.String("via", ev.Via))
			}
		}),
		bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
				logger.Info("config loaded", zap.String("path", ev.Path), zap.String("source", ev.SourceURL))
			}
		}),
		bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
				logger.Info("config saved", zap.String("path", ev.Path))
			}
		}),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/oddrange/internal/config"
	"github.com/vk/oddrange/internal/ctxlog"
	"github.com/vk/oddrange/internal/i18n"
)

// App encapsulates the application's streams, logger and messages.
type App struct {
	in       io.Reader
	outW     io.Writer
	logger   *slog.Logger
	messages *config.Messages
}

// NewApp is the constructor for the main application. Program output goes to
// outW and logs go to logW. The loader is only used when cfg.MessagesPath is
// set.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	lang := i18n.Match(cfg.Tag())
	messages := i18n.Messages(lang)
	logger.Debug("Built-in messages selected.", "requested", cfg.Language, "language", lang.String())

	if cfg.MessagesPath != "" {
		var err error
		messages, err = loader.Load(ctx, cfg.MessagesPath, messages)
		if err != nil {
			return nil, fmt.Errorf("failed to load messages: %w", err)
		}
		logger.Debug("Message overrides loaded.", "path", cfg.MessagesPath)
	}

	return &App{
		in:       in,
		outW:     outW,
		logger:   logger,
		messages: messages,
	}, nil
}

// Messages returns the messages the App prints. This is primarily for testing.
func (a *App) Messages() *config.Messages {
	return a.messages
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	ucli "github.com/urfave/cli/v2"
	"github.com/vk/oddrange/internal/app"
	"github.com/vk/oddrange/internal/hcl"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Streams are the process streams the command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// New builds the oddrange command. Errors are returned from Run rather than
// terminating the process; the caller decides the exit code.
func New(streams Streams) *ucli.App {
	cfg := app.Config{}

	return &ucli.App{
		Name:      "oddrange",
		Usage:     "print the odd numbers between B and A in descending order",
		UsageText: "oddrange [options] < input",
		Description: "Prompts for two integers A and B on standard input and, if A > B,\n" +
			"prints every odd number from A down to B inclusive.",
		HideVersion: true,
		Reader:      streams.In,
		Writer:      streams.Out,
		ErrWriter:   streams.Err,

		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:        "log-level",
				Usage:       "logging level: 'debug', 'info', 'warn' or 'error'",
				Value:       "warn",
				EnvVars:     []string{"ODDRANGE_LOG_LEVEL"},
				Destination: &cfg.LogLevel,
			},
			&ucli.StringFlag{
				Name:        "log-format",
				Usage:       "log output format: 'text' or 'json'",
				Value:       "text",
				EnvVars:     []string{"ODDRANGE_LOG_FORMAT"},
				Destination: &cfg.LogFormat,
			},
			&ucli.StringFlag{
				Name:        "lang",
				Usage:       "language of prompts and messages (BCP 47 tag)",
				Value:       "ru",
				EnvVars:     []string{"ODDRANGE_LANG"},
				Destination: &cfg.Language,
			},
			&ucli.StringFlag{
				Name:        "messages",
				Aliases:     []string{"m"},
				Usage:       "path to an HCL file overriding prompts and messages",
				EnvVars:     []string{"ODDRANGE_MESSAGES"},
				Destination: &cfg.MessagesPath,
			},
		},
		OnUsageError: func(_ *ucli.Context, err error, _ bool) error {
			return &ExitError{Code: 2, Message: err.Error()}
		},
		ExitErrHandler: func(_ *ucli.Context, _ error) {},
		Action: func(cCtx *ucli.Context) error {
			if cCtx.NArg() > 0 {
				return &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", cCtx.Args().Slice())}
			}

			appConfig, err := app.NewConfig(cfg)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			slog.Debug("CLI parameter validation complete.", "config", appConfig)

			oddApp, err := app.NewApp(streams.In, streams.Out, streams.Err, appConfig, hcl.NewLoader())
			if err != nil {
				return err
			}

			return oddApp.Run(cCtx.Context)
		},
	}
}

// Run executes the command with args, where args[0] is the program name.
func Run(ctx context.Context, args []string, streams Streams) error {
	return New(streams).RunContext(ctx, args)
}

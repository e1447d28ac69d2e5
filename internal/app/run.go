package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/vk/oddrange/internal/console"
	"github.com/vk/oddrange/internal/ctxlog"
	"github.com/vk/oddrange/internal/oddrange"
)

// Run prompts for A and B, then prints either the ordering violation message
// or the header followed by the odd numbers of [B, A] in descending order.
// A violated ordering is not an error; unparseable input is.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	reader := console.NewReader(a.in, a.outW)
	upper, err := reader.ReadInt("A", a.messages.PromptA)
	if err != nil {
		return err
	}
	lower, err := reader.ReadInt("B", a.messages.PromptB)
	if err != nil {
		return err
	}
	logger.Debug("Inputs parsed.", "a", upper, "b", lower)

	w := bufio.NewWriter(a.outW)

	odds, err := oddrange.All(upper, lower)
	if errors.Is(err, oddrange.ErrOrdering) {
		logger.Info("Ordering violated, nothing to compute.", "a", upper, "b", lower)
		fmt.Fprintln(w, a.messages.OrderingViolation)
		return flush(w)
	}
	if err != nil {
		return fmt.Errorf("failed to compute odd numbers: %w", err)
	}

	fmt.Fprintln(w, a.messages.Header(upper, lower))
	count := 0
	for n := range odds {
		fmt.Fprintln(w, n)
		count++
	}
	if err := flush(w); err != nil {
		return err
	}

	logger.Debug("App.Run method finished.", "odd_count", count)
	return nil
}

func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

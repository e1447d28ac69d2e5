package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/oddrange/internal/config"
	"github.com/vk/oddrange/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL message loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode the top-level blocks of a message file.
type fileRoot struct {
	Messages *messagesBlock `hcl:"messages,block"`
	Remain   hcl.Body       `hcl:",remain"`
}

// messagesBlock holds raw expressions; absent attributes decode to null.
type messagesBlock struct {
	PromptA  hcl.Expression `hcl:"prompt_a,optional"`
	PromptB  hcl.Expression `hcl:"prompt_b,optional"`
	Ordering hcl.Expression `hcl:"ordering,optional"`
	Header   hcl.Expression `hcl:"header,optional"`
}

// Load parses the HCL file at path and applies its messages block on top of
// base. A file without a messages block leaves base unchanged.
func (l *Loader) Load(ctx context.Context, path string, base *config.Messages) (*config.Messages, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL message loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HCL file %s: %w", path, err)
	}

	return l.loadSource(ctx, path, src, base)
}

// loadSource parses src; filename is used only in diagnostics.
func (l *Loader) loadSource(ctx context.Context, filename string, src []byte, base *config.Messages) (*config.Messages, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return l.decode(ctx, filename, file.Body, base)
}

func (l *Loader) decode(ctx context.Context, filename string, body hcl.Body, base *config.Messages) (*config.Messages, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	msgs := base.Clone()
	if root.Messages == nil {
		logger.Debug("No messages block found, keeping built-in messages.", "path", filename)
		return msgs, nil
	}

	overrides := 0
	for _, field := range []struct {
		name   string
		expr   hcl.Expression
		target *string
	}{
		{"prompt_a", root.Messages.PromptA, &msgs.PromptA},
		{"prompt_b", root.Messages.PromptB, &msgs.PromptB},
		{"ordering", root.Messages.Ordering, &msgs.OrderingViolation},
	} {
		s, ok, err := evalString(field.expr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s in %s: %w", field.name, filename, err)
		}
		if ok {
			*field.target = s
			overrides++
		}
	}

	header, ok, err := newHeaderTemplate(ctx, root.Messages.Header, base.Header)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate header in %s: %w", filename, err)
	}
	if ok {
		msgs.Header = header.Render
		overrides++
	}

	logger.Debug("Message overrides applied.", "path", filename, "count", overrides)
	return msgs, nil
}

package hcl

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/oddrange/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// headerTemplate renders a header expression with the range bounds bound to
// the variables `a` and `b`.
type headerTemplate struct {
	expr     hcl.Expression
	fallback func(a, b *big.Int) string
	logger   *slog.Logger
}

// newHeaderTemplate returns ok=false if expr evaluates to null. The
// expression is evaluated once with sample bounds so that unknown variables
// and type errors surface at load time.
func newHeaderTemplate(ctx context.Context, expr hcl.Expression, fallback func(a, b *big.Int) string) (*headerTemplate, bool, error) {
	_, ok, err := evalString(expr, boundsContext(big.NewInt(1), big.NewInt(0)))
	if err != nil || !ok {
		return nil, false, err
	}
	return &headerTemplate{expr: expr, fallback: fallback, logger: ctxlog.FromContext(ctx)}, true, nil
}

// Render evaluates the template. Values that passed the load-time check can
// still fail here (an out of range index, for example); the built-in header
// is used instead and the failure is logged.
func (h *headerTemplate) Render(a, b *big.Int) string {
	s, ok, err := evalString(h.expr, boundsContext(a, b))
	if err != nil {
		h.logger.Warn("Header template failed, using built-in header.", "a", a.String(), "b", b.String(), "error", err)
		return h.fallback(a, b)
	}
	if !ok {
		h.logger.Warn("Header template evaluated to null, using built-in header.", "a", a.String(), "b", b.String())
		return h.fallback(a, b)
	}
	return s
}

func boundsContext(a, b *big.Int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"a": cty.NumberVal(new(big.Float).SetInt(a)),
			"b": cty.NumberVal(new(big.Float).SetInt(b)),
		},
	}
}

// evalString evaluates expr and converts the result to a string. It returns
// ok=false for a null result.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, bool, error) {
	if expr == nil {
		return "", false, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}
	if !val.IsWhollyKnown() {
		return "", false, fmt.Errorf("value is not known")
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}
	return strVal.AsString(), true, nil
}

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/engine"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalContext exposes the defaults as the `default` object and a small set
// of numeric functions.
func evalContext(defaults engine.GameConfig) (*hcl.EvalContext, error) {
	obj, err := toCtyValue(defaults)
	if err != nil {
		return nil, err
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"default": obj},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
		},
	}, nil
}

// toCtyValue converts a native Go value into its corresponding cty.Value.
func toCtyValue(v any) (cty.Value, error) {
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// decodeInt converts val to a whole number and stores it in target.
func decodeInt(ctx context.Context, val cty.Value, target *int) error {
	logger := ctxlog.FromContext(ctx)
	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("value must be known")
	}

	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}
	return gocty.FromCtyValue(converted, target)
}

package fingerprint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// ErrInvalidParam is returned when an algorithm parameter cannot be parsed
// or is not accepted by the algorithm.
var ErrInvalidParam = errors.New("invalid algorithm parameter")

// ParamSpec declares one tunable parameter of an algorithm: its name, the
// default used when the caller does not set it, a converter from the raw
// string form, and a help line for listings.
type ParamSpec struct {
	Name    string
	Default any
	Help    string
	Parse   func(raw string) (any, error)
}

// Params holds parsed parameter values keyed by parameter name.
type Params map[string]any

// Int returns the named parameter as an int, or zero when absent. Compute
// fills defaults first, so inside an algorithm the key is always present.
func (p Params) Int(name string) int {
	v, _ := p[name].(int)
	return v
}

// ParseParams converts raw key=value parameters into typed values, applying
// declared defaults for anything not supplied. Unknown keys are rejected so
// a typo fails loudly instead of silently fingerprinting with defaults.
func (a Algorithm) ParseParams(raw map[string]string) (Params, error) {
	params := a.fillDefaults(nil)
	for key, value := range raw {
		spec, ok := lo.Find(a.Params, func(s ParamSpec) bool { return s.Name == key })
		if !ok {
			return nil, fmt.Errorf("%w: %s does not accept %q", ErrInvalidParam, a.Name, key)
		}
		parsed, err := spec.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidParam, key, err)
		}
		params[key] = parsed
	}
	return params, nil
}

// fillDefaults returns a copy of p with every declared parameter present,
// defaults filling the gaps.
func (a Algorithm) fillDefaults(p Params) Params {
	filled := make(Params, len(a.Params))
	for _, spec := range a.Params {
		filled[spec.Name] = spec.Default
	}
	for key, value := range p {
		filled[key] = value
	}
	return filled
}

func parseHashSizeParam(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("not an integer: %q", raw)
	}
	if n < 8 || n%8 != 0 {
		return nil, fmt.Errorf("must be a positive multiple of 8, got %d", n)
	}
	return n, nil
}

package step

// Params holds the caller-supplied inputs for a design step. Keys are
// parameter names; absence of a key is meaningful and is not the same as a
// zero value (some load combinations are only evaluated when a load is
// actually present).
type Params map[string]any

// Has reports whether the parameter was supplied at all.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Float returns the named parameter as a float64. Integers are accepted
// and widened; anything else is an InputError.
func (p Params) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, NewInputError(name, "required parameter missing")
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, NewInputError(name, "must be a number")
	}
}

// PositiveFloat returns the named parameter as a float64, rejecting zero
// and negative values.
func (p Params) PositiveFloat(name string) (float64, error) {
	v, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, NewInputError(name, "must be positive")
	}
	return v, nil
}

// Int returns the named parameter as an int. Unlike Float it does not
// accept fractional values.
func (p Params) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok {
		return 0, NewInputError(name, "required parameter missing")
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, NewInputError(name, "must be an integer")
		}
		return int(n), nil
	default:
		return 0, NewInputError(name, "must be an integer")
	}
}

// String returns the named parameter as a string.
func (p Params) String(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", NewInputError(name, "required parameter missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", NewInputError(name, "must be a string")
	}
	return s, nil
}

// RequireParams checks that every named parameter is present, failing on
// the first missing one in the order given.
func RequireParams(p Params, names ...string) error {
	for _, name := range names {
		if !p.Has(name) {
			return NewInputError(name, "required parameter missing")
		}
	}
	return nil
}

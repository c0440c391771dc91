package calculator

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// parseOperand reads a required query parameter and parses it as a finite
// float64. An empty value counts as missing. strconv accepts "Inf" and "NaN"
// spellings, so the finiteness check runs after parsing.
func parseOperand(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w %q", ErrMissingParameter, name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q for parameter %q", ErrInvalidNumber, raw, name)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %q for parameter %q", ErrInvalidNumber, raw, name)
	}

	return v, nil
}

// parseOperands extracts the two operands every calculator endpoint requires.
func parseOperands(r *http.Request) (float64, float64, error) {
	first, err := parseOperand(r, "first")
	if err != nil {
		return 0, 0, err
	}

	second, err := parseOperand(r, "second")
	if err != nil {
		return 0, 0, err
	}

	return first, second, nil
}

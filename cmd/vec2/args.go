package main

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/log"
	"github.com/taigrr/vec2/pkg/math2d"
)

// parseFloats splits a comma list, allowing surrounding parentheses so
// negative vectors can be written as (-1,2) without tripping flag parsing.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	fields := strings.Split(s, ",")
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", f, s)
		}
		vals[i] = v
	}
	return vals, nil
}

func parseVector(s string) (*math2d.Vector2, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		log.Warnf("vector %q has %d components, using the zero vector", s, len(vals))
	}
	return math2d.FromSlice(vals), nil
}

func parseVectors(args []string) ([]*math2d.Vector2, error) {
	vs := make([]*math2d.Vector2, len(args))
	for i, a := range args {
		v, err := parseVector(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func parseScalar(s string) (float64, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func parseMatrix2(s string) (*math2d.Matrix2, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	if len(vals) != 4 {
		return nil, fmt.Errorf("2x2 matrix needs 4 values, got %d", len(vals))
	}
	return (*math2d.Matrix2)(vals), nil
}

func parseMatrix3(s string) (*math2d.Matrix3, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	if len(vals) != 9 {
		return nil, fmt.Errorf("3x3 matrix needs 9 values, got %d", len(vals))
	}
	return (*math2d.Matrix3)(vals), nil
}

func formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'f', max(digits, 0), 64)
}

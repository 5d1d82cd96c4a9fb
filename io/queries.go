package io

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ParseQueries parses a comma or whitespace separated list of x values. An
// empty string gives an empty list.
func ParseQueries(str string) ([]float64, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return ParseQueryArgs(fields)
}

// ParseQueryArgs parses one x value per element of args.
func ParseQueryArgs(args []string) ([]float64, error) {
	xs := make([]float64, 0, len(args))
	for _, arg := range args {
		x, err := cast.ToFloat64E(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("Query '%s' is not a number.", arg)
		}
		xs = append(xs, x)
	}
	return xs, nil
}

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"boxstat/domain/core"
	"boxstat/domain/stats/boxplot"
	"boxstat/internal/errors"
)

// parseValues parses positional sample values; every value must be a finite number.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, isSeparator) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.InvalidInput(fmt.Sprintf("not a finite number: %q", field))
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// parseColumn parses "name=v1,v2,...". Entries that are not finite numbers
// become NaN, the missing-value marker understood by the computation.
func parseColumn(arg string) (boxplot.Column, error) {
	name, list, ok := strings.Cut(arg, "=")
	if !ok {
		return boxplot.Column{}, errors.InvalidInput(fmt.Sprintf("column %q must look like name=v1,v2,...", arg))
	}
	key, err := core.ParseColumnKey(name)
	if err != nil {
		return boxplot.Column{}, errors.Wrap(errors.InvalidInput(err.Error()), "invalid --column")
	}

	var values []float64
	if list != "" {
		for _, field := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil || math.IsInf(v, 0) {
				v = math.NaN()
			}
			values = append(values, v)
		}
	}
	return boxplot.Column{Key: key, Values: values}, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

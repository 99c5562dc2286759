package main

import (
	"os"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"gopkg.in/yaml.v3"
)

// input is the on-disk form of a group collection. JSON files are read as
// YAML.
//
//	labels: [alpha, beta]
//	groups:
//	  - [a, b, c]
//	  - [b, c]
type input[T any] struct {
	Labels []string `yaml:"labels"`
	Groups [][]T    `yaml:"groups"`
}

func loadInput[T any](path string) (input[T], error) {
	var in input[T]

	data, err := os.ReadFile(path)
	if err != nil {
		return in, errors.Wrapf(err, "read input %s", path)
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, errors.Wrapf(err, "parse input %s", path)
	}
	if len(in.Groups) == 0 {
		return in, errors.Wrapf(errors.ErrEmptyData, "input %s has no groups", path)
	}
	if len(in.Labels) > 0 && len(in.Labels) != len(in.Groups) {
		return in, errors.NewValidationError("labels", "must name every group", len(in.Labels))
	}
	return in, nil
}

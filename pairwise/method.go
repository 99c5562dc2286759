// Package pairwise builds square matrices of pairwise scores over a
// collection of groups: Jaccard similarity between item sets, or a
// correlation coefficient between numeric sequences.
//
// The scoring method is either a named Preset or a caller-supplied function:
//
//	m, err := pairwise.SimilarityMatrix(groups, pairwise.SimilarityPreset[string](pairwise.Jaccard))
//	c, err := pairwise.CorrelationMatrix(series, pairwise.CorrelationPreset(pairwise.Kendall))
//	c, err := pairwise.CorrelationMatrix(series, pairwise.CorrelationFunc(myScore))
package pairwise

import (
	"strings"

	"github.com/YuminosukeSato/plotkit/metrics"
	"github.com/YuminosukeSato/plotkit/pkg/errors"
)

// Preset names a built-in scoring function.
type Preset string

const (
	Jaccard  Preset = "jaccard"
	Pearson  Preset = "pearson"
	Spearman Preset = "spearman"
	Kendall  Preset = "kendall"
)

// ParsePreset resolves a user-facing preset name, ignoring case and
// surrounding spaces.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case Jaccard, Pearson, Spearman, Kendall:
		return p, nil
	}
	return "", errors.NewUnsupportedMethodError("ParsePreset", name)
}

// SetScoreFunc scores two item sets.
type SetScoreFunc[T comparable] func(a, b metrics.Set[T]) float64

// SeqScoreFunc scores two numeric sequences.
type SeqScoreFunc func(a, b []float64) float64

const customMethod = "custom"

// SimilarityMethod selects how SimilarityMatrix scores a pair of groups.
// The zero value is the Jaccard preset.
type SimilarityMethod[T comparable] struct {
	preset Preset
	fn     SetScoreFunc[T]
	custom bool
}

// SimilarityPreset selects a named preset. Only Jaccard is a similarity
// preset; any other value fails when the matrix is built.
func SimilarityPreset[T comparable](p Preset) SimilarityMethod[T] {
	return SimilarityMethod[T]{preset: p}
}

// SimilarityFunc selects a caller-supplied scoring function.
func SimilarityFunc[T comparable](fn SetScoreFunc[T]) SimilarityMethod[T] {
	return SimilarityMethod[T]{fn: fn, custom: true}
}

// String returns the preset name, or "custom" for a supplied function.
func (m SimilarityMethod[T]) String() string {
	if m.custom {
		return customMethod
	}
	if m.preset == "" {
		return string(Jaccard)
	}
	return string(m.preset)
}

func (m SimilarityMethod[T]) resolve() (SetScoreFunc[T], error) {
	if m.custom {
		if m.fn == nil {
			return nil, errors.NewUnsupportedMethodError("SimilarityMatrix", "nil function")
		}
		return m.fn, nil
	}
	switch m.preset {
	case "", Jaccard:
		return metrics.Jaccard[T], nil
	}
	return nil, errors.NewUnsupportedMethodError("SimilarityMatrix", string(m.preset))
}

// CorrelationMethod selects how CorrelationMatrix scores a pair of
// sequences. The zero value is the Pearson preset.
type CorrelationMethod struct {
	preset Preset
	fn     SeqScoreFunc
	custom bool
}

// CorrelationPreset selects Pearson, Spearman or Kendall; any other value
// fails when the matrix is built.
func CorrelationPreset(p Preset) CorrelationMethod {
	return CorrelationMethod{preset: p}
}

// CorrelationFunc selects a caller-supplied coefficient.
func CorrelationFunc(fn SeqScoreFunc) CorrelationMethod {
	return CorrelationMethod{fn: fn, custom: true}
}

// String returns the preset name, or "custom" for a supplied function.
func (m CorrelationMethod) String() string {
	if m.custom {
		return customMethod
	}
	if m.preset == "" {
		return string(Pearson)
	}
	return string(m.preset)
}

type seqScore func(a, b []float64) (float64, error)

func (m CorrelationMethod) resolve() (seqScore, error) {
	if m.custom {
		if m.fn == nil {
			return nil, errors.NewUnsupportedMethodError("CorrelationMatrix", "nil function")
		}
		fn := m.fn
		return func(a, b []float64) (float64, error) { return fn(a, b), nil }, nil
	}
	switch m.preset {
	case "", Pearson:
		return metrics.Pearson, nil
	case Spearman:
		return metrics.Spearman, nil
	case Kendall:
		return metrics.Kendall, nil
	}
	return nil, errors.NewUnsupportedMethodError("CorrelationMatrix", string(m.preset))
}

package pairwise

import (
	"time"

	"github.com/YuminosukeSato/plotkit/core/parallel"
	"github.com/YuminosukeSato/plotkit/metrics"
	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/YuminosukeSato/plotkit/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// SimilarityMatrix returns the n×n matrix whose (i, j) entry scores the item
// sets of groups[i] and groups[j]. Duplicate items within a group are
// ignored. With the Jaccard preset the matrix is symmetric with a unit
// diagonal.
//
// An unknown preset or a nil function fails with
// *errors.UnsupportedMethodError before any scoring takes place.
func SimilarityMatrix[T comparable](groups [][]T, method SimilarityMethod[T], opts ...Option) (*mat.Dense, error) {
	score, err := method.resolve()
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	sets := make([]metrics.Set[T], len(groups))
	for i, g := range groups {
		sets[i] = metrics.NewSet(g...)
	}

	return build(cfg, log.OperationSimilarity, len(groups), method.String(), func(i, j int) (float64, error) {
		return score(sets[i], sets[j]), nil
	})
}

// CorrelationMatrix returns the n×n matrix whose (i, j) entry is the
// correlation coefficient between seqs[i] and seqs[j].
//
// Sequence lengths are not checked here; the presets reject mismatched
// pairs with *errors.DimensionError. Constant sequences produce NaN entries
// and a NumericalInstabilityError warning, and the matrix is still returned.
func CorrelationMatrix(seqs [][]float64, method CorrelationMethod, opts ...Option) (*mat.Dense, error) {
	score, err := method.resolve()
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	m, err := build(cfg, log.OperationCorrelation, len(seqs), method.String(), func(i, j int) (float64, error) {
		return score(seqs[i], seqs[j])
	})
	if err != nil {
		return nil, err
	}

	n := len(seqs)
	if warn := errors.CheckMatrix("CorrelationMatrix", m, n, n); warn != nil {
		var instability *errors.NumericalInstabilityError
		if errors.As(warn, &instability) {
			cfg.logger.Warn("non-finite coefficients", log.NonFiniteKey, instability.Count)
		}
		errors.Warn(warn)
	}
	return m, nil
}

// build evaluates score for every ordered pair (i, j), including i == j.
// Rows are split across workers; each row writes only its own cells.
func build(cfg *config, op string, n int, method string, score func(i, j int) (float64, error)) (*mat.Dense, error) {
	if n == 0 {
		return &mat.Dense{}, nil
	}

	start := time.Now()
	m := mat.NewDense(n, n, nil)

	err := parallel.Parallelize(n, cfg.workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			row := i
			if err := errors.SafeExecute(op, func() error {
				for j := 0; j < n; j++ {
					v, err := score(row, j)
					if err != nil {
						return err
					}
					m.Set(row, j, v)
				}
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		cfg.logger.Error("matrix build failed", err,
			log.OperationKey, op,
			log.MethodKey, method,
			log.GroupsKey, n,
		)
		return nil, err
	}

	cfg.logger.Debug("matrix built",
		log.OperationKey, op,
		log.MethodKey, method,
		log.GroupsKey, n,
		log.EvaluationsKey, n*n,
		log.WorkersKey, parallel.Workers(cfg.workers),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return m, nil
}

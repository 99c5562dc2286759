package metrics

import (
	"math"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/YuminosukeSato/plotkit/preprocessing"
	"gonum.org/v1/gonum/stat"
)

// Pearson はピアソンの積率相関係数を計算する
//
// パラメータ:
//   - x, y: 同じ長さの観測値 (2つ以上)
//
// 戻り値:
//   - float64: [-1, 1] の相関係数。どちらかが定数列の場合は NaN
//   - error: 長さが異なる場合は DimensionError、観測値が2未満の場合は ValueError
func Pearson(x, y []float64) (float64, error) {
	if err := checkPair("Pearson", x, y); err != nil {
		return 0, err
	}
	return stat.Correlation(x, y, nil), nil
}

// Spearman はスピアマンの順位相関係数を計算する
// 同順位には平均順位を与え、順位に対するピアソン相関を返す
func Spearman(x, y []float64) (float64, error) {
	if err := checkPair("Spearman", x, y); err != nil {
		return 0, err
	}
	return stat.Correlation(preprocessing.Rank(x), preprocessing.Rank(y), nil), nil
}

// Kendall はケンドールの順位相関係数 tau-b を計算する
//
//	tau_b = (C - D) / sqrt((n0 - n1) * (n0 - n2))
//
// C は一致ペア数、D は不一致ペア数、n0 = n(n-1)/2、
// n1 と n2 はそれぞれ x と y の同順位ペア数
// stat.Kendall は同順位を補正しない tau-a なので使わない
func Kendall(x, y []float64) (float64, error) {
	if err := checkPair("Kendall", x, y); err != nil {
		return 0, err
	}

	n := len(x)
	var concordant, discordant, tiesX, tiesY float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			switch {
			case dx == 0 && dy == 0:
				tiesX++
				tiesY++
			case dx == 0:
				tiesX++
			case dy == 0:
				tiesY++
			case (dx > 0) == (dy > 0):
				concordant++
			default:
				discordant++
			}
		}
	}

	n0 := float64(n*(n-1)) / 2
	denom := math.Sqrt((n0 - tiesX) * (n0 - tiesY))
	if denom == 0 {
		return math.NaN(), nil
	}
	return (concordant - discordant) / denom, nil
}

func checkPair(op string, x, y []float64) error {
	if len(x) != len(y) {
		return errors.NewDimensionError(op, len(x), len(y), 0)
	}
	if len(x) < 2 {
		return errors.NewValueError(op, "need at least two observations")
	}
	return nil
}

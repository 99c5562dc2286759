package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Rank は x の各要素に1始まりの順位を付ける
// 同値の要素には平均順位を与える (例: [10, 20, 20, 30] -> [1, 2.5, 2.5, 4])
//
// パラメータ:
//   - x: 入力データ (変更されない)
//
// 戻り値:
//   - []float64: x と同じ長さの順位
func Rank(x []float64) []float64 {
	n := len(x)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}

	// Argsort は dst をソートするのでコピーを渡す
	sorted := make([]float64, n)
	copy(sorted, x)
	inds := make([]int, n)
	floats.Argsort(sorted, inds)

	for i := 0; i < n; {
		j := i + 1
		for j < n && sorted[j] == sorted[i] {
			j++
		}
		// 位置 i..j-1 は同値: 順位 i+1..j の平均
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[inds[k]] = avg
		}
		i = j
	}
	return ranks
}

// Extent はマスクされていない有限要素の最小値と最大値を返す
// skip が nil の場合は全要素を対象にする
// 対象となる要素が1つも無い場合 ok は false
func Extent(m mat.Matrix, skip func(i, j int) bool) (min, max float64, ok bool) {
	r, c := m.Dims()
	min, max = math.Inf(1), math.Inf(-1)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if skip != nil && skip(i, j) {
				continue
			}
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

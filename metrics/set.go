package metrics

// Set は比較可能な要素の集合
type Set[T comparable] map[T]struct{}

// NewSet は items から重複を除いた集合を作成する
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Contains は item が集合に含まれるかを返す
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Jaccard はジャカード係数 |A∩B| / |A∪B| を計算する
// 両方が空集合の場合は同一とみなし 1.0 を返す
func Jaccard[T comparable](a, b Set[T]) float64 {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	var inter int
	for item := range small {
		if large.Contains(item) {
			inter++
		}
	}

	union := len(a) + len(b) - inter
	if union == 0 {
		return 1.0
	}
	return float64(inter) / float64(union)
}

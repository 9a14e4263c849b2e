package listview

// Grouper partitions records into groups of equal key.
//
// Implementations must be stable: groups appear in the order their key first
// appears in records, and records within a group keep their input order. A
// Grouper never returns an empty group.
type Grouper[T, K any] func(records []T, key func(T) K) [][]T

// GroupBy groups records by key using Go equality. key is called exactly once
// per record.
func GroupBy[T any, K comparable](records []T, key func(T) K) [][]T {
	groups := make([][]T, 0)
	index := make(map[K]int)
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

// GroupByFunc groups records by key, comparing keys with equal. Keys need not
// be comparable, so each new key is checked against every key seen so far.
// equal must be an equivalence relation.
func GroupByFunc[T, K any](records []T, key func(T) K, equal func(a, b K) bool) [][]T {
	groups := make([][]T, 0)
	var seen []K
	for _, r := range records {
		k := key(r)
		i := -1
		for j, s := range seen {
			if equal(s, k) {
				i = j
				break
			}
		}
		if i < 0 {
			i = len(groups)
			seen = append(seen, k)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

// EqualFunc returns a [Grouper] that compares keys with equal.
func EqualFunc[T, K any](equal func(a, b K) bool) Grouper[T, K] {
	return func(records []T, key func(T) K) [][]T {
		return GroupByFunc(records, key, equal)
	}
}

package listview

import "iter"

// FormatSeq collects records from seq and formats them with [Format].
// Sections and rows follow the order in which seq yields records.
func FormatSeq[T any, K comparable, S, R any](seq iter.Seq[T], sectionKey func(T) K, sectionValue func(T) S, rowValue func(T) R) Result[S, R] {
	return Format(collect(seq), sectionKey, sectionValue, rowValue)
}

// FormatSeqFunc is like [FormatSeq] but compares section keys with equal.
func FormatSeqFunc[T, K, S, R any](seq iter.Seq[T], sectionKey func(T) K, equal func(a, b K) bool, sectionValue func(T) S, rowValue func(T) R) Result[S, R] {
	return FormatFunc(collect(seq), sectionKey, equal, sectionValue, rowValue)
}

// FormatChan receives records from ch until the sender closes it, then formats
// them with [Format]. A nil channel is never closed, so FormatChan blocks
// forever on one.
func FormatChan[T any, K comparable, S, R any](ch <-chan T, sectionKey func(T) K, sectionValue func(T) S, rowValue func(T) R) Result[S, R] {
	return FormatSeq(chanToIter(ch), sectionKey, sectionValue, rowValue)
}

// chanToIter yields each record received from ch in arrival order. It stops
// early only if the consumer does, leaving any unread records in ch.
func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// collect drains seq into a slice so grouping can see every record.
func collect[T any](seq iter.Seq[T]) []T {
	var items []T
	seq(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

package stream

// Concat concatenates a stream of streams into a single stream; the inner
// streams are joined sequentially one after the other.
func Concat[K comparable, V any, SK comparable](streams Stream[SK, Stream[K, V]]) Stream[K, V] {
	return FlatMap(streams, func(_ SK, s Stream[K, V]) Stream[K, V] {
		return s
	})
}

// ConcatStreams concatenates multiple streams into a single stream; the
// streams are joined sequentially one after the other.
func ConcatStreams[K comparable, V any](streams ...Stream[K, V]) Stream[K, V] {
	if len(streams) == 0 {
		return Empty[K, V]()
	}
	return Concat(Indexed(streams...))
}

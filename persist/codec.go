package persist

import "strconv"

// Codec converts keys or values to and from their text form in a snapshot.
type Codec[T any] interface {
	Format(T) string
	Parse(string) (T, error)
}

// CodecFuncs adapts a pair of functions to a Codec.
type CodecFuncs[T any] struct {
	FormatFunc func(T) string
	ParseFunc  func(string) (T, error)
}

func (c CodecFuncs[T]) Format(v T) string { return c.FormatFunc(v) }
func (c CodecFuncs[T]) Parse(s string) (T, error) { return c.ParseFunc(s) }

var (
	// String stores text as-is.
	String Codec[string] = CodecFuncs[string]{
		FormatFunc: func(s string) string { return s },
		ParseFunc:  func(s string) (string, error) { return s, nil },
	}

	// Int stores base-10 integers.
	Int Codec[int] = CodecFuncs[int]{
		FormatFunc: strconv.Itoa,
		ParseFunc:  strconv.Atoi,
	}

	// Int64 stores base-10 64-bit integers.
	Int64 Codec[int64] = CodecFuncs[int64]{
		FormatFunc: func(v int64) string { return strconv.FormatInt(v, 10) },
		ParseFunc:  func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	}

	// Float64 stores floats in the shortest form that round-trips.
	Float64 Codec[float64] = CodecFuncs[float64]{
		FormatFunc: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		ParseFunc:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	}
)

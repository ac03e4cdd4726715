package coord

// PixelRange is the closed pixel interval an axis is drawn over.
type PixelRange struct {
	Lo, Hi int
}

// Ranged is a coordinate over values of type T.
type Ranged[T any] interface {
	// Range returns the begin and end of the interval.
	Range() (T, T)
	// Map projects v onto px.
	Map(v T, px PixelRange) int
	// KeyPoints returns at most about maxPoints tick values in ascending
	// order. A non-positive maxPoints yields no points.
	KeyPoints(maxPoints int) []T
}

// Discrete is a Ranged coordinate whose values have a natural unit step.
type Discrete[T any] interface {
	Ranged[T]
	Next(v T) T
	Previous(v T) T
}

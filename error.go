package cache

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [NewLRU], [NewSLRU],
// [NewLFU], and [NewLIRS].
const ErrInvalidCapacity = constError("invalid capacity")

// ErrInvalidRatio may be returned from [NewSLRU] and [NewLIRS].
const ErrInvalidRatio = constError("invalid ratio")

func (errStr constError) Error() string { return string(errStr) }

func capacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >0 but %d was requested",
		ErrInvalidCapacity, capacity)
}

func ratioError(name, bounds string, ratio float64) error {
	return fmt.Errorf(
		"%w: %s must be within %s but %v was requested",
		ErrInvalidRatio, name, bounds, ratio)
}

func emptySegmentError(name string, ratio float64, capacity int) error {
	return fmt.Errorf(
		"%w: %s %v leaves an empty segment at capacity %d",
		ErrInvalidRatio, name, ratio, capacity)
}

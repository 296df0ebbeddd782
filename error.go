package lru2

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [New].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func negativeCapacityError(queue Queue, capacity int) error {
	return fmt.Errorf(
		"%w: %s capacity must be >=0 but %d was requested",
		ErrInvalidCapacity, queue, capacity)
}

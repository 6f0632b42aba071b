package storage

import "errors"

// ErrNotFound reports an absent key. Callers treat it as "no snapshot yet".
var ErrNotFound = errors.New("storage: key not found")

// Storage is the durable key-value capability the cart and order history
// persist through. Implementations must make Write visible to a subsequent
// Read before returning.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Remove(key string) error
}

package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by every repository implementation when the
// requested item does not exist
var ErrNotFound = goerr.New("not found")

// Repository defines the interface for the session state. Implementations
// are volatile; nothing outlives the process.
type Repository interface {
	Catalog() CatalogRepository
	Answer() AnswerRepository
}

// Versioned is implemented by stores whose contents can be memoized. The
// version changes on every successful mutation and never otherwise.
type Versioned interface {
	Version() uint64
}

package memory

import "github.com/secmon-lab/roadmap/pkg/domain/interfaces"

// ErrNotFound is returned when the requested item does not exist
var ErrNotFound = interfaces.ErrNotFound

// Package memory holds an in-process implementation of the repository
// contracts. It backs the service and HTTP tests where a Postgres instance
// is not available and mirrors the store's atomicity guarantees (unique
// email, owner-scoped note access) under a single mutex.
package memory

import (
	"sync"

	"notekeep-be/internal/entity"
)

type Store struct {
	mu         sync.Mutex
	users      map[uint]*entity.User
	emails     map[string]uint
	notes      map[uint]*entity.Note
	noteOrder  []uint
	nextUserId uint
	nextNoteId uint
}

func NewStore() *Store {
	return &Store{
		users:      make(map[uint]*entity.User),
		emails:     make(map[string]uint),
		notes:      make(map[uint]*entity.Note),
		nextUserId: 1,
		nextNoteId: 1,
	}
}

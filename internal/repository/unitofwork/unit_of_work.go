package unitofwork

import (
	"context"

	"notekeep-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to a single request. Read-then-write
// sequences (duplicate-email check, owner-gated mutation) run between Begin
// and Commit so they are atomic under concurrent requests.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
}

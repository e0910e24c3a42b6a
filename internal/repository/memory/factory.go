package memory

import (
	"context"

	"notekeep-be/internal/repository/contract"
	"notekeep-be/internal/repository/unitofwork"
)

// Factory hands out units of work over a shared in-process store.
type Factory struct {
	store *Store
}

func NewFactory() *Factory {
	return &Factory{store: NewStore()}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork satisfies the transactional surface. Repository operations are
// individually atomic under the store mutex, so Begin/Commit/Rollback only
// track pairing.
type unitOfWork struct {
	store *Store
	inTx  bool
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	u.inTx = true
	return nil
}

func (u *unitOfWork) Commit() error {
	u.inTx = false
	return nil
}

func (u *unitOfWork) Rollback() error {
	u.inTx = false
	return nil
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *unitOfWork) NoteRepository() contract.NoteRepository {
	return NewNoteRepository(u.store)
}

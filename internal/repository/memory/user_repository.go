package memory

import (
	"context"
	"fmt"
	"time"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/contract"
	"notekeep-be/internal/repository/specification"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{store: store}
}

func matchUser(u *entity.User, specs []specification.Specification) (bool, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if u.Email != s.Email {
				return false, nil
			}
		case specification.ByID:
			if u.Id != s.ID {
				return false, nil
			}
		default:
			return false, fmt.Errorf("memory: unsupported user specification %T", spec)
		}
	}
	return true, nil
}

// Create checks and inserts under one lock, so concurrent signups with the
// same email race exactly like they do against the unique index.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.emails[user.Email]; taken {
		return apperror.ErrEmailRegistered
	}

	user.Id = r.store.nextUserId
	r.store.nextUserId++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	cp := *user
	r.store.users[user.Id] = &cp
	r.store.emails[user.Email] = user.Id
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users[user.Id]
	if !ok {
		return fmt.Errorf("memory: user %d not found", user.Id)
	}
	if id, taken := r.store.emails[user.Email]; taken && id != user.Id {
		return apperror.ErrEmailRegistered
	}

	delete(r.store.emails, existing.Email)
	user.UpdatedAt = time.Now()
	cp := *user
	r.store.users[user.Id] = &cp
	r.store.emails[user.Email] = user.Id
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		ok, err := matchUser(u, specs)
		if err != nil {
			return nil, err
		}
		if ok {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, u := range r.store.users {
		ok, err := matchUser(u, specs)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

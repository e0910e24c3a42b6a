package memory

import (
	"context"
	"fmt"
	"time"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/repository/contract"
	"notekeep-be/internal/repository/specification"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) contract.NoteRepository {
	return &NoteRepository{store: store}
}

func matchNote(n *entity.Note, specs []specification.Specification) (bool, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false, nil
			}
		case specification.OwnedBy:
			if n.UserId != s.UserID {
				return false, nil
			}
		case specification.OrderBy:
			// noteOrder keeps insertion order; nothing else is supported.
		default:
			return false, fmt.Errorf("memory: unsupported note specification %T", spec)
		}
	}
	return true, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note.Id = r.store.nextNoteId
	r.store.nextNoteId++
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	cp := *note
	r.store.notes[note.Id] = &cp
	r.store.noteOrder = append(r.store.noteOrder, note.Id)
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notes[note.Id]; !ok {
		return fmt.Errorf("memory: note %d not found", note.Id)
	}
	note.UpdatedAt = time.Now()
	cp := *note
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.notes, id)
	for i, nid := range r.store.noteOrder {
		if nid == id {
			r.store.noteOrder = append(r.store.noteOrder[:i], r.store.noteOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range r.store.noteOrder {
		n := r.store.notes[id]
		ok, err := matchNote(n, specs)
		if err != nil {
			return nil, err
		}
		if ok {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Note
	for _, id := range r.store.noteOrder {
		n := r.store.notes[id]
		ok, err := matchNote(n, specs)
		if err != nil {
			return nil, err
		}
		if ok {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, n := range r.store.notes {
		ok, err := matchNote(n, specs)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

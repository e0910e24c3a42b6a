package service

import (
	"context"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"
)

type INoteService interface {
	Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, userId uint) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId, noteId uint) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId, noteId uint) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{uowFactory: uowFactory}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:      n.Id,
		Title:   n.Title,
		Content: n.Content,
	}
}

func (s *noteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	note := &entity.Note{
		Title:   req.Title,
		Content: req.Content,
		UserId:  userId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) List(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out, nil
}

func (s *noteService) Show(ctx context.Context, userId, noteId uint) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		// Missing and foreign-owned are the same answer.
		return nil, apperror.ErrNoteNotFound
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.ErrNoteNotFound
	}

	note.Title = req.Title
	note.Content = req.Content
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId, noteId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.ErrNoteNotFound
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	return uow.Commit()
}

package service

import (
	"context"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/hasher"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetProfile(ctx context.Context, user *entity.User) *dto.UserProfileResponse
	UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, user *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:    user.Id,
		Email: user.Email,
	}
}

// UpdateProfile replaces both mutable fields. The password is rehashed even
// when the caller resends the old one; the contract has no way to tell.
func (s *userService) UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	hash, err := hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	user.Email = req.Email
	user.PasswordHash = hash
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UserProfileResponse{
		Id:    user.Id,
		Email: user.Email,
	}, nil
}

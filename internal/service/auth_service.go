package service

import (
	"context"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/hasher"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/internal/pkg/token"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *token.Manager
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens *token.Manager, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		log:        log,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) error {
	hash, err := hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hash,
	}

	// No separate existence check: the insert itself is the atomic
	// duplicate-email guard. Two racing signups cannot both succeed.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return err
	}

	s.log.Info("auth", "user signed up", map[string]interface{}{"user_id": user.Id})
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Same error as a wrong password, no account enumeration.
		return nil, apperror.ErrInvalidCredentials
	}

	ok, err := hasher.Verify(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, apperror.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "user logged in", map[string]interface{}{"user_id": user.Id})

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

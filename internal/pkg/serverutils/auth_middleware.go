package serverutils

import (
	"errors"

	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/internal/pkg/token"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the ctx.Locals key holding the resolved *entity.User.
const CurrentUserKey = "current_user"

// NewAuthMiddleware builds the auth gate: extract the bearer token, verify
// it, resolve the subject to a user record, and fail closed on any miss.
// No protected route is registered without it.
func NewAuthMiddleware(tokens *token.Manager, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return apperror.ErrInvalidToken
		}

		subject, err := tokens.Verify(authHeader[7:])
		if err != nil {
			// The client sees one 401; the log keeps the reason.
			reason := "malformed or bad signature"
			if errors.Is(err, token.ErrExpired) {
				reason = "expired"
			}
			log.Warn("auth", "token rejected", map[string]interface{}{"reason": reason})
			return apperror.ErrInvalidToken
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByEmail{Email: subject})
		if err != nil {
			return err
		}
		if user == nil {
			log.Warn("auth", "token subject has no user record", nil)
			return apperror.ErrUserNotFound
		}

		ctx.Locals(CurrentUserKey, user)
		return ctx.Next()
	}
}

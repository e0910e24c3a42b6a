package bootstrap

import (
	"time"

	"notekeep-be/internal/config"
	"notekeep-be/internal/controller"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/pkg/token"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	AuthController controller.IAuthController
	UserController controller.IUserController
	NoteController controller.INoteController

	// AuthMiddleware is the auth gate every protected route runs behind.
	AuthMiddleware fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	return NewContainerWithFactory(unitofwork.NewRepositoryFactory(db), cfg)
}

// NewContainerWithFactory wires the app against any repository factory; the
// HTTP tests inject the in-memory one here.
func NewContainerWithFactory(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokens := token.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenTTLMinutes)*time.Minute,
	)

	authService := service.NewAuthService(uowFactory, tokens, sysLogger)
	userService := service.NewUserService(uowFactory)
	noteService := service.NewNoteService(uowFactory)

	return &Container{
		AuthController: controller.NewAuthController(authService),
		UserController: controller.NewUserController(userService),
		NoteController: controller.NewNoteController(noteService),
		AuthMiddleware: serverutils.NewAuthMiddleware(tokens, uowFactory, sysLogger),
		Logger:         sysLogger,
	}
}

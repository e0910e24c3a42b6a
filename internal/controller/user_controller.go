package controller

import (
	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authGate fiber.Handler)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, authGate fiber.Handler) {
	h := r.Group("/me")
	h.Use(authGate)
	h.Get("", c.GetProfile)
	h.Put("", c.UpdateProfile)
}

func currentUser(ctx *fiber.Ctx) *entity.User {
	return ctx.Locals(serverutils.CurrentUserKey).(*entity.User)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	return ctx.JSON(c.service.GetProfile(ctx.Context(), user))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.Context(), user.Id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

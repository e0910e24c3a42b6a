package controller

import (
	"strconv"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, authGate fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, authGate fiber.Handler) {
	h := r.Group("/notes")
	h.Use(authGate)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

// noteId parses the path id. A non-numeric id cannot name a note, so it gets
// the same 404 as a missing or foreign one.
func noteId(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, apperror.ErrNoteNotFound
	}
	return uint(id), nil
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	res, err := c.noteService.List(ctx.Context(), user.Id)
	if err != nil {
		return err
	}
	if res == nil {
		res = []*dto.NoteResponse{}
	}
	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	id, err := noteId(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), user.Id, id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	id, err := noteId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	user := currentUser(ctx)

	id, err := noteId(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), user.Id, id); err != nil {
		return err
	}
	return ctx.JSON(dto.DeleteNoteResponse{Detail: "Note deleted"})
}

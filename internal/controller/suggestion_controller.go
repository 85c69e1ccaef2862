package controller

import (
	"github.com/gofiber/fiber/v2"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/serverutils"
	"genfy-be/internal/service"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Selected(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type suggestionController struct {
	suggestionService service.ISuggestionService
}

func NewSuggestionController(suggestionService service.ISuggestionService) ISuggestionController {
	return &suggestionController{
		suggestionService: suggestionService,
	}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/suggestions")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Get(":id", c.Get)
	h.Post("toggle/:id", c.Toggle)
	h.Get("selected/:id", c.Selected)
	h.Delete("clear/:id", c.Clear)
}

func (c *suggestionController) Get(ctx *fiber.Ctx) error {
	refresh := ctx.QueryInt("refresh", 0)
	currentInput := ctx.Query("current_input")

	res, err := c.suggestionService.Get(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), refresh, currentInput)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *suggestionController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleSuggestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.suggestionService.Toggle(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Suggestion toggled", res))
}

func (c *suggestionController) Selected(ctx *fiber.Ctx) error {
	res, err := c.suggestionService.Selected(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *suggestionController) Clear(ctx *fiber.Ctx) error {
	if err := c.suggestionService.Clear(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Selection cleared", nil))
}

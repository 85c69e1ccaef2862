package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/serverutils"
	"genfy-be/internal/service"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	Final(ctx *fiber.Ctx) error
	Refine(ctx *fiber.Ctx) error
}

type promptController struct {
	promptService service.IPromptService
}

func NewPromptController(promptService service.IPromptService) IPromptController {
	return &promptController{
		promptService: promptService,
	}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prompt")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Get("final/:id", c.Final)
	h.Post("refine/:id", serverutils.RateLimit(5, time.Minute), c.Refine)
}

func (c *promptController) Final(ctx *fiber.Ctx) error {
	res, err := c.promptService.FinalData(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *promptController) Refine(ctx *fiber.Ctx) error {
	var req dto.RefinePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.Refine(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Prompt refined", res))
}

package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/serverutils"
	"genfy-be/internal/service"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	VisualOptions(ctx *fiber.Ctx) error
	SaveVisualSettings(ctx *fiber.Ctx) error
	GenerateQuick(ctx *fiber.Ctx) error
}

type categoryController struct {
	categoryService service.ICategoryService
	promptService   service.IPromptService
}

func NewCategoryController(categoryService service.ICategoryService, promptService service.IPromptService) ICategoryController {
	return &categoryController{
		categoryService: categoryService,
		promptService:   promptService,
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	cats := r.Group("/categories")
	cats.Use(serverutils.OptionalJwtMiddleware)
	cats.Get("", c.List)
	cats.Post("select/:id", c.Select)

	visual := r.Group("/visual-settings")
	visual.Use(serverutils.OptionalJwtMiddleware)
	visual.Get("options", c.VisualOptions)
	visual.Post("save/:id", c.SaveVisualSettings)
	visual.Post("generate-quick/:id", serverutils.RateLimit(10, time.Minute), c.GenerateQuick)
}

func (c *categoryController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success", c.categoryService.List(ctx.Context())))
}

func (c *categoryController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.categoryService.Select(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category selected", res))
}

func (c *categoryController) VisualOptions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success", c.categoryService.VisualOptions(ctx.Context())))
}

func (c *categoryController) SaveVisualSettings(ctx *fiber.Ctx) error {
	var req dto.SaveVisualSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.categoryService.SaveVisualSettings(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Visual settings saved", nil))
}

func (c *categoryController) GenerateQuick(ctx *fiber.Ctx) error {
	var req dto.QuickGenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.GenerateQuick(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Prompt generated", res))
}

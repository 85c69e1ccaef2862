package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"genfy-be/internal/pkg/serverutils"
	"genfy-be/internal/service"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ReferenceContext(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) IFileController {
	return &fileController{
		fileService: fileService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post(":id/upload", serverutils.RateLimit(20, time.Minute), c.Upload)
	h.Get(":id/files", c.List)
	h.Delete(":id/files/:index", c.Delete)
	h.Get(":id/reference-context", c.ReferenceContext)
}

func (c *fileController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expected multipart form data")
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}

	res, err := c.fileService.Upload(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), files)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Files uploaded", res))
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	res, err := c.fileService.List(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file index must be a number")
	}

	if err := c.fileService.DeleteByIndex(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), index); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("File deleted", nil))
}

func (c *fileController) ReferenceContext(ctx *fiber.Ctx) error {
	res, err := c.fileService.ReferenceContext(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

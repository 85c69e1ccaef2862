package controller

import (
	"github.com/gofiber/fiber/v2"

	"genfy-be/internal/dto"
	"genfy-be/internal/pkg/serverutils"
	"genfy-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
	CurrentQuestion(ctx *fiber.Ctx) error
	Skip(ctx *fiber.Ctx) error
	SubmitAnswer(ctx *fiber.Ctx) error
}

type chatController struct {
	conversationService service.IConversationService
	promptService       service.IPromptService
}

func NewChatController(conversationService service.IConversationService, promptService service.IPromptService) IChatController {
	return &chatController{
		conversationService: conversationService,
		promptService:       promptService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("start/:id", c.Start)
	h.Get("messages/:id", c.Messages)
	h.Get("current-question/:id", c.CurrentQuestion)
	h.Post("skip/:id", c.Skip)

	answer := r.Group("/answer")
	answer.Use(serverutils.OptionalJwtMiddleware)
	answer.Post("submit/:id", c.SubmitAnswer)
}

func (c *chatController) Start(ctx *fiber.Ctx) error {
	res, err := c.conversationService.Start(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat started", res))
}

func (c *chatController) Messages(ctx *fiber.Ctx) error {
	res, err := c.conversationService.Messages(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *chatController) CurrentQuestion(ctx *fiber.Ctx) error {
	res, err := c.conversationService.CurrentQuestion(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *chatController) Skip(ctx *fiber.Ctx) error {
	res, err := c.conversationService.Skip(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}

	// The conversation is over, produce the prompt right away.
	final, err := c.promptService.GenerateFinal(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	res.FinalPrompt = final.FinalPrompt
	return ctx.JSON(serverutils.SuccessResponse("Questions skipped", res))
}

func (c *chatController) SubmitAnswer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.conversationService.SubmitAnswer(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx), &req)
	if err != nil {
		return err
	}

	if res.ShouldGeneratePrompt {
		final, err := c.promptService.GenerateFinal(ctx.Context(), ctx.Params("id"), serverutils.UserId(ctx))
		if err != nil {
			return err
		}
		res.FinalPrompt = final.FinalPrompt
	}
	return ctx.JSON(serverutils.SuccessResponse("Answer recorded", res))
}

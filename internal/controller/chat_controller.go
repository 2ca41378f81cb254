package controller

import (
	"ai-docqa-client/internal/dto"
	"ai-docqa-client/internal/pkg/serverutils"
	"ai-docqa-client/internal/presenter"
	"ai-docqa-client/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	ToggleEvidence(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("", c.Show)
	h.Delete("", c.Reset)
	h.Post("messages", c.SendMessage)
	h.Post("evidence/toggle", c.ToggleEvidence)
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
	res := presenter.RenderConversation(c.service.Snapshot())
	return ctx.JSON(serverutils.SuccessResponse("Success get conversation", res))
}

// SendMessage blocks until the answer (or the fallback turn) is in the log.
func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	submitted := c.service.SubmitQuery(ctx.UserContext(), req.Query)

	res := dto.SendQueryResponse{
		Submitted:    submitted,
		Conversation: presenter.RenderConversation(c.service.Snapshot()),
	}
	if !submitted {
		return ctx.JSON(serverutils.SuccessResponse("Query ignored", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) ToggleEvidence(ctx *fiber.Ctx) error {
	c.service.ToggleEvidence(ctx.UserContext())
	res := presenter.RenderConversation(c.service.Snapshot())
	return ctx.JSON(serverutils.SuccessResponse("Success toggle sources", res))
}

func (c *chatController) Reset(ctx *fiber.Ctx) error {
	c.service.Reset(ctx.UserContext())
	res := presenter.RenderConversation(c.service.Snapshot())
	return ctx.JSON(serverutils.SuccessResponse("Success reset conversation", res))
}

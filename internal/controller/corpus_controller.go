package controller

import (
	"ai-docqa-client/internal/dto"
	"ai-docqa-client/internal/pkg/serverutils"
	"ai-docqa-client/internal/presenter"
	"ai-docqa-client/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICorpusController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
}

type corpusController struct {
	service service.ICorpusService
}

func NewCorpusController(service service.ICorpusService) ICorpusController {
	return &corpusController{service: service}
}

func (c *corpusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/corpus/v1")
	h.Get("", c.Show)
	h.Post("refresh", c.Refresh)
	h.Post("reindex", c.Reindex)
}

func (c *corpusController) Show(ctx *fiber.Ctx) error {
	res := presenter.RenderCorpus(c.service.Snapshot())
	return ctx.JSON(serverutils.SuccessResponse("Success get documents", res))
}

func (c *corpusController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshCorpusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	c.service.SetRefreshTrigger(ctx.UserContext(), req.Token)

	res := presenter.RenderCorpus(c.service.Snapshot())
	return ctx.JSON(serverutils.SuccessResponse("Success refresh documents", res))
}

func (c *corpusController) Reindex(ctx *fiber.Ctx) error {
	c.service.ReindexAll(ctx.UserContext())

	res := presenter.RenderCorpus(c.service.Snapshot())
	return ctx.JSON(serverutils.SuccessResponse("Success reindex documents", res))
}

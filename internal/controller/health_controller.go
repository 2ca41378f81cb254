package controller

import (
	"context"

	"ai-docqa-client/internal/dto"
	"ai-docqa-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type BackendProber interface {
	Ping(ctx context.Context) (string, error)
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	backend BackendProber
}

func NewHealthController(backend BackendProber) IHealthController {
	return &healthController{backend: backend}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

// Health always answers 200; backend reachability is reported in the body.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	res := dto.HealthResponse{Backend: "up"}
	msg, err := c.backend.Ping(ctx.UserContext())
	if err != nil {
		res.Backend = "down"
		res.BackendMessage = err.Error()
	} else {
		res.BackendMessage = msg
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

package bootstrap

import (
	"context"
	"net/http"
	"time"

	"ai-docqa-client/internal/config"
	"ai-docqa-client/internal/controller"
	"ai-docqa-client/internal/dropwatch"
	"ai-docqa-client/internal/handler"
	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/internal/repository/memory"
	"ai-docqa-client/internal/service"
	"ai-docqa-client/internal/websocket"
	"ai-docqa-client/pkg/ragapi"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Container struct {
	Logger  logger.ILogger
	Backend *ragapi.Client

	// Core components
	UploadService service.IUploadService
	CorpusService service.ICorpusService
	ChatService   service.IChatService

	// Controllers
	ChatController   controller.IChatController
	UploadController controller.IUploadController
	CorpusController controller.ICorpusController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	DropWatcher     *dropwatch.Watcher // nil unless a drop folder is configured

	// WebSockets
	StateHandler *handler.StateHandler
	WebSocketHub *websocket.Hub

	pubSub *gochannel.GoChannel
}

func NewContainer(cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Backend client
	backend := ragapi.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)
	backend.Client.Transport = otelhttp.NewTransport(http.DefaultTransport)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger.NewWatermillAdapter(sysLogger, "BUS"),
	)
	publisherService := service.NewPublisherService(pubSub)

	// 3. Components
	corpusRepo := memory.NewCorpusRepository()
	uploadService := service.NewUploadService(backend, publisherService, sysLogger)
	corpusService := service.NewCorpusService(backend, corpusRepo, publisherService, sysLogger)
	chatService := service.NewChatService(backend, publisherService, sysLogger)

	// 4. WebSocket Hub
	wsHub := websocket.NewHub(sysLogger)
	consumerService := service.NewConsumerService(pubSub, corpusService, wsHub, sysLogger)

	var dropWatcher *dropwatch.Watcher
	if cfg.App.DropDir != "" {
		settle := time.Duration(cfg.App.DropSettleMillis) * time.Millisecond
		dropWatcher = dropwatch.NewWatcher(cfg.App.DropDir, settle, uploadService, sysLogger)
	}

	return &Container{
		Logger:  sysLogger,
		Backend: backend,

		UploadService: uploadService,
		CorpusService: corpusService,
		ChatService:   chatService,

		ChatController:   controller.NewChatController(chatService),
		UploadController: controller.NewUploadController(uploadService),
		CorpusController: controller.NewCorpusController(corpusService),
		HealthController: controller.NewHealthController(backend),

		ConsumerService: consumerService,
		DropWatcher:     dropWatcher,

		StateHandler: handler.NewStateHandler(wsHub, sysLogger),
		WebSocketHub: wsHub,

		pubSub: pubSub,
	}
}

// Start runs the hub, subscribes the consumer and starts the drop watcher.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	if err := c.ConsumerService.Consume(ctx); err != nil {
		return err
	}

	if c.DropWatcher != nil {
		go func() {
			if err := c.DropWatcher.Run(ctx); err != nil {
				c.Logger.Error("DROP", "Drop folder stopped", map[string]interface{}{"error": err.Error()})
			}
		}()
	}
	return nil
}

// Close shuts the event bus down; the consumer goroutines exit when their channels close.
func (c *Container) Close() error {
	return c.pubSub.Close()
}

package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"genfy-be/internal/config"
	"genfy-be/internal/controller"
	"genfy-be/internal/pkg/logger"
	"genfy-be/internal/repository/memory"
	"genfy-be/internal/repository/unitofwork"
	"genfy-be/internal/service"
	"genfy-be/pkg/llm"
	"genfy-be/pkg/llm/factory"
	"genfy-be/pkg/storage"
	"genfy-be/pkg/vision"
)

type Container struct {
	// Controllers
	SessionController    controller.ISessionController
	CategoryController   controller.ICategoryController
	ChatController       controller.IChatController
	SuggestionController controller.ISuggestionController
	PromptController     controller.IPromptController
	FileController       controller.IFileController
	HistoryController    controller.IHistoryController
	AuthController       controller.IAuthController

	// Background services (run from main.go)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogPath)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM providers, resolved lazily so one missing API key does not block boot
	providerCfg := factory.ProviderConfig{
		MistralAPIKey:   cfg.Keys.Mistral,
		AnthropicAPIKey: cfg.Keys.Anthropic,
		OllamaBaseURL:   cfg.Ai.OllamaBaseURL,
		OllamaModel:     cfg.Ai.OllamaModel,
	}
	registry := llm.NewRegistry(cfg.Ai.DefaultProvider, func(name string) (llm.LLMProvider, error) {
		return factory.NewLLMProvider(name, providerCfg)
	})
	log.Printf("[INFO] Default LLM provider: %s", cfg.Ai.DefaultProvider)

	visionClient, err := vision.NewClient(cfg.Keys.OpenRouter)
	if err != nil {
		log.Printf("[WARN] Vision analysis disabled: %v", err)
		visionClient = nil
	}

	// 4. Storage
	fileStorage, err := storage.NewLocalStorage(cfg.App.UploadDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to prepare upload directory: %v", err)
	}
	sessionCache := memory.NewSessionRepository()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, fileStorage, auditLogger, sysLogger)

	sessionService := service.NewSessionService(uowFactory, sessionCache, registry, publisherService, sysLogger)
	categoryService := service.NewCategoryService(sessionService)
	conversationService := service.NewConversationService(sessionService)
	suggestionService := service.NewSuggestionService(sessionService, registry, sysLogger)
	analysisService := service.NewAnalysisService(visionClient, fileStorage, sysLogger)
	promptService := service.NewPromptService(uowFactory, sessionService, analysisService, registry, publisherService, sysLogger)
	fileService := service.NewFileService(sessionService, fileStorage, sysLogger)
	historyService := service.NewHistoryService(uowFactory)
	authService := service.NewAuthService(uowFactory)

	// 6. Controllers
	return &Container{
		SessionController:    controller.NewSessionController(sessionService),
		CategoryController:   controller.NewCategoryController(categoryService, promptService),
		ChatController:       controller.NewChatController(conversationService, promptService),
		SuggestionController: controller.NewSuggestionController(suggestionService),
		PromptController:     controller.NewPromptController(promptService),
		FileController:       controller.NewFileController(fileService),
		HistoryController:    controller.NewHistoryController(historyService),
		AuthController:       controller.NewAuthController(authService),
		ConsumerService:      consumerService,
	}
}

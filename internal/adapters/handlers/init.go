package handlers

import (
	"net/http"

	"github.com/iwtcode/lltfService/internal/config"
	"github.com/iwtcode/lltfService/internal/interfaces"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
	"github.com/iwtcode/lltfService/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.Default()

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// Командный эндпоинт фильтра
	router.POST("/lltf", h.Command)

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		polling := v1.Group("/polling")
		{
			polling.POST("/start", h.StartPolling)
			polling.POST("/stop", h.StopPolling)
		}

		grating := v1.Group("/grating")
		{
			grating.POST("/calibrate", h.CalibrateGrating)
		}

		v1.GET("/commands", h.RecentCommands)
	}

	return router
}

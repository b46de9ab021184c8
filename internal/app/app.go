package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/lltfService/internal/adapters/handlers"
	"github.com/iwtcode/lltfService/internal/adapters/repositories/postgres"
	"github.com/iwtcode/lltfService/internal/config"
	"github.com/iwtcode/lltfService/internal/interfaces"
	"github.com/iwtcode/lltfService/internal/lltf"
	"github.com/iwtcode/lltfService/internal/middleware/logging"
	"github.com/iwtcode/lltfService/internal/middleware/swagger"
	"github.com/iwtcode/lltfService/internal/services/kafka"
	"github.com/iwtcode/lltfService/internal/services/lltf_service"
	"github.com/iwtcode/lltfService/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		BindingModule,
		RepositoryModule,
		ProducerModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для запуска фоновых задач и хуков жизненного цикла
		fx.Invoke(InvokeProbeFilter),
		fx.Invoke(InvokeRestorePolling),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	return logging.NewLogger(loggerCfg, "LLTFServiceApp")
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

// BindingModule предоставляет привязку к нативному SDK. На платформах без
// PE_Filter_SDK конструктор возвращает ошибку, и запуск приложения
// прерывается: без библиотеки сервису нечем управлять.
var BindingModule = fx.Module("binding_module",
	fx.Provide(lltf.NewSDKBinding),
)

var RepositoryModule = fx.Module("repository_module",
	fx.Provide(postgres.NewRepository),
)

var ProducerModule = fx.Module("producer_module",
	fx.Provide(kafka.NewKafkaProducer),
)

var ServiceModule = fx.Module("service_module",
	fx.Provide(lltf_service.NewLLTFService),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

func NewSwaggerConfig() *swagger.Config {
	return &swagger.Config{
		Enabled: true,
		Path:    "/swagger",
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeProbeFilter один раз открывает и закрывает сессию с фильтром при
// старте, чтобы проверить конфигурацию до приёма трафика. Отключённый
// фильтр — предупреждение, а не фатальная ошибка: прибор могут подключить
// позже.
func InvokeProbeFilter(lc fx.Lifecycle, lltfSvc interfaces.LLTFService, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Probing LLTF filter...")
			status, err := lltfSvc.Status()
			if err != nil {
				logger.Warn("LLTF filter probe failed; the instrument may be disconnected", "error", err)
				return nil
			}
			logger.Info("LLTF filter probe succeeded",
				"system", status.SystemName,
				"library_version", status.LibraryVersion,
				"wavelength", status.Wavelength.Central,
			)
			return nil
		},
	})
}

// InvokeRestorePolling восстанавливает состояние опроса из БД при старте.
func InvokeRestorePolling(lc fx.Lifecycle, lltfSvc interfaces.LLTFService, dbRepo interfaces.CommandRepository, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			state, err := dbRepo.GetPollingState()
			if err != nil {
				logger.Error("Failed to get polling state from DB", "error", err)
				return nil // Не фатально, просто продолжаем
			}

			if !state.Enabled || state.Interval <= 0 {
				logger.Info("No saved polling state to restore.")
				return nil
			}

			interval := time.Duration(state.Interval) * time.Millisecond
			logger.Info("Restoring polling", "interval", interval)
			if err := lltfSvc.StartPolling(interval); err != nil {
				logger.Warn("Failed to restore polling", "error", err)
			}
			return nil
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

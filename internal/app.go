package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	token_adapter "brokerage-service/internal/adapters/jwt"
	logger_adapter "brokerage-service/internal/adapters/logger"
	postgres_adapter "brokerage-service/internal/adapters/postgres"
	rabbitmq_adapter "brokerage-service/internal/adapters/rabbitmq"
	redis_adapter "brokerage-service/internal/adapters/redis"
	"brokerage-service/internal/adapters/rest"
	s3_adapter "brokerage-service/internal/adapters/s3"
	ses_adapter "brokerage-service/internal/adapters/ses"
	"brokerage-service/internal/configs"
	"brokerage-service/internal/constants"
	"brokerage-service/internal/core/port"
	"brokerage-service/internal/core/usecase"

	fluentlogger "brokerage-service/pkg/fluent_logger"
	"brokerage-service/pkg/postgres"
	"brokerage-service/pkg/rabbitmq/rabbitmq_common"
	"brokerage-service/pkg/rabbitmq/rabbitmq_consumer"
	"brokerage-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	propertiesCacheTTL = 5 * time.Minute
	careersCacheTTL    = 10 * time.Minute
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	cache        *redis_adapter.Cache
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	leadEventsListener port.EventListenerPort
	leadEventsProducer *rabbitmq_producer.Publisher
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ НИЗКОУРОВНЕВЫХ ЗАВИСИМОСТЕЙ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyRepository, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create property repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	blogRepository, err := postgres_adapter.NewBlogRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create blog repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create blog repository: %w", err)
	}
	careerRepository, err := postgres_adapter.NewCareerRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create career repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create career repository: %w", err)
	}
	leadRepository, err := postgres_adapter.NewLeadRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create lead repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create lead repository: %w", err)
	}
	userRepository, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create user repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	appLogger.Info("Postgres repositories initialized.", nil)

	cache, err := redis_adapter.NewCache(context.Background(), redis_adapter.Config{
		Address:  appConfig.Redis.Address,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		appLogger.Error("Failed to connect to Redis", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	appLogger.Info("Redis cache initialized.", nil)

	imageStorage, err := s3_adapter.NewImageStorage(context.Background(), s3_adapter.Config{
		Region:         appConfig.S3.Region,
		Bucket:         appConfig.S3.Bucket,
		Endpoint:       appConfig.S3.Endpoint,
		PublicBaseURL:  appConfig.S3.PublicBaseURL,
		ForcePathStyle: appConfig.S3.ForcePathStyle,
	})
	if err != nil {
		appLogger.Error("Failed to create S3 image storage", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create S3 image storage: %w", err)
	}

	mailer, err := ses_adapter.NewMailer(context.Background(), appConfig.SES.Region, appConfig.SES.Sender)
	if err != nil {
		appLogger.Error("Failed to create SES mailer", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create SES mailer: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.JWT.SigningKey, appConfig.JWT.TTL)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	appLogger.Info("S3, SES and JWT adapters initialized.", nil)

	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	pkgLoggerBridge := rabbitmq_adapter.NewPkgLoggerBridge(producerLogger)

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger)
	connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, connManagerBridge)
	if err != nil {
		appLogger.Error("Failed to create connection manager", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerCfg := rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		ExchangeName:             constants.LeadsExchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,

		Logger: pkgLoggerBridge,
	}
	leadEventsProducer, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		appLogger.Error("Failed to create lead events producer", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create lead events producer: %w", err)
	}
	appLogger.Info("RabbitMQ Lead Events Producer initialized.", nil)

	leadQueueAdapter, err := rabbitmq_adapter.NewLeadEnqueueAdapter(leadEventsProducer)
	if err != nil {
		appLogger.Error("Failed to create lead enqueue adapter", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create lead enqueue adapter: %w", err)
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(propertyRepository, cache, propertiesCacheTTL)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(propertyRepository)
	findSimilarUseCase := usecase.NewFindSimilarPropertiesUseCase(propertyRepository)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertyRepository, imageStorage, cache)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(propertyRepository, imageStorage, cache)
	setPropertyStatusUseCase := usecase.NewSetPropertyStatusUseCase(propertyRepository, cache)

	listBlogPostsUseCase := usecase.NewListBlogPostsUseCase(blogRepository)
	getBlogPostBySlugUseCase := usecase.NewGetBlogPostBySlugUseCase(blogRepository)
	createBlogPostUseCase := usecase.NewCreateBlogPostUseCase(blogRepository)
	updateBlogPostUseCase := usecase.NewUpdateBlogPostUseCase(blogRepository)
	deleteBlogPostUseCase := usecase.NewDeleteBlogPostUseCase(blogRepository)

	listCareerPostingsUseCase := usecase.NewListCareerPostingsUseCase(careerRepository, cache, careersCacheTTL)
	submitApplicationUseCase := usecase.NewSubmitCareerApplicationUseCase(careerRepository, leadQueueAdapter, imageStorage)
	createPostingUseCase := usecase.NewCreateCareerPostingUseCase(careerRepository, cache)
	updatePostingUseCase := usecase.NewUpdateCareerPostingUseCase(careerRepository, cache)
	listApplicationsUseCase := usecase.NewListCareerApplicationsUseCase(careerRepository)

	submitViewingUseCase := usecase.NewSubmitViewingRequestUseCase(leadRepository, propertyRepository, leadQueueAdapter)
	submitContactUseCase := usecase.NewSubmitContactRequestUseCase(leadRepository, leadQueueAdapter)
	getViewingSlotsUseCase := usecase.NewGetViewingSlotsUseCase()
	listLeadsUseCase := usecase.NewListLeadsUseCase(leadRepository)

	registerUserUseCase := usecase.NewRegisterUserUseCase(userRepository, tokenService)
	loginUserUseCase := usecase.NewLoginUserUseCase(userRepository, tokenService)
	validateTokenUseCase := usecase.NewValidateTokenUseCase(tokenService)
	getCurrentUserUseCase := usecase.NewGetCurrentUserUseCase(userRepository)

	uploadImageUseCase := usecase.NewUploadImageUseCase(imageStorage)
	notifyLeadUseCase := usecase.NewNotifyLeadUseCase(mailer, appConfig.SES.Recipients)

	appLogger.Info("All use cases initialized.", nil)

	// --- 5. ИНИЦИАЛИЗАЦИЯ ВХОДЯЩИХ АДАПТЕРОВ ---
	leadConsumerCfg := rabbitmq_consumer.ConsumerConfig{
		Config:              rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		QueueName:           constants.LeadsQueue,
		DurableQueue:        true,
		ExchangeNameForBind: constants.LeadsExchange,
		RoutingKeyForBind:   constants.RoutingKeyLeads,
		PrefetchCount:       1,
		ConsumerTag:         "lead-notifier-adapter",
		DeclareQueue:        true,

		EnableRetryMechanism: true,

		RetryExchange: constants.LeadsRetryExchange,
		RetryQueue:    constants.LeadsRetryQueue,
		RetryTTL:      10000, // 10 секунд в миллисекундах

		FinalDLXExchange:   constants.LeadsFinalDLX,
		FinalDLQ:           constants.LeadsFinalDLQ,
		FinalDLQRoutingKey: constants.LeadsFinalDLQKey,

		MaxRetries: 3,
	}
	leadEventsListener, err := rabbitmq_adapter.NewLeadConsumerAdapter(leadConsumerCfg, notifyLeadUseCase, baseLogger, connManager)
	if err != nil {
		appLogger.Error("Failed to create Lead Events listener", err, nil)
		dbPool.Close()
		return nil, err
	}
	appLogger.Info("Lead Events Listener initialized.", nil)

	// --- 6. REST API SERVER ---
	propertyHandler := rest.NewPropertyHandler(
		findPropertiesUseCase,
		getPropertyDetailsUseCase,
		findSimilarUseCase,
		createPropertyUseCase,
		updatePropertyUseCase,
		setPropertyStatusUseCase,
	)
	blogHandler := rest.NewBlogHandler(
		listBlogPostsUseCase,
		getBlogPostBySlugUseCase,
		createBlogPostUseCase,
		updateBlogPostUseCase,
		deleteBlogPostUseCase,
	)
	careerHandler := rest.NewCareerHandler(
		listCareerPostingsUseCase,
		submitApplicationUseCase,
		createPostingUseCase,
		updatePostingUseCase,
		listApplicationsUseCase,
	)
	leadHandler := rest.NewLeadHandler(
		submitViewingUseCase,
		submitContactUseCase,
		getViewingSlotsUseCase,
		listLeadsUseCase,
	)
	authHandler := rest.NewAuthHandler(registerUserUseCase, loginUserUseCase, getCurrentUserUseCase)
	uploadHandler := rest.NewUploadHandler(uploadImageUseCase)
	authMiddleware := rest.NewAuthMiddleware(validateTokenUseCase)

	serverCfg := rest.ServerConfig{
		Port:           appConfig.Rest.PORT,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}
	apiServer := rest.NewServer(serverCfg, propertyHandler, blogHandler, careerHandler, leadHandler, authHandler, uploadHandler, authMiddleware, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// --- 7. СОБИРАЕМ ПРИЛОЖЕНИЕ ---
	application := &App{
		config:             appConfig,
		dbPool:             dbPool,
		cache:              cache,
		apiServer:          apiServer,
		leadEventsListener: leadEventsListener,
		leadEventsProducer: leadEventsProducer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	// Используем WaitGroup для ожидания завершения всех фоновых задач
	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.leadEventsListener != nil {
			if err := a.leadEventsListener.Close(); err != nil {
				a.logger.Error("Error closing lead events listener", err, nil)
			}
		}

		if a.leadEventsProducer != nil {
			if err := a.leadEventsProducer.Close(); err != nil {
				a.logger.Error("Error closing lead events producer", err, nil)
			}
		}

		if a.cache != nil {
			if err := a.cache.Close(); err != nil {
				a.logger.Error("Error closing Redis cache", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	// Функция-хелпер для запуска слушателей
	startListener := func(name string, listener port.EventListenerPort) {
		defer wg.Done()
		listenerLogger := a.logger.WithFields(port.Fields{"listener_name": name})
		listenerLogger.Info("Starting listener...", nil)

		if err := listener.Start(appCtx); err != nil {
			listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
			errorsCh <- fmt.Errorf("%s error: %w", name, err)
		} else {
			listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
		}
	}

	wg.Add(1)
	go startListener("Lead Events Listener", a.leadEventsListener)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

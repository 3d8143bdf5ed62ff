package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-cms/internal/config"
	"github.com/ignatzorin/portfolio-cms/internal/db"
	httpHandlers "github.com/ignatzorin/portfolio-cms/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-cms/internal/http/router"
	"github.com/ignatzorin/portfolio-cms/internal/logger"
	"github.com/ignatzorin/portfolio-cms/internal/repository"
	"github.com/ignatzorin/portfolio-cms/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	accessService := service.NewAccessService(service.AdminCredentials{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}, tokenManager)

	// Репозитории.
	portfolioRepo := repository.NewPortfolioRepository(dbConn)
	educationRepo := repository.NewEducationRepository(dbConn)
	workExperienceRepo := repository.NewWorkExperienceRepository(dbConn)
	skillRepo := repository.NewSkillRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn)
	blogRepo := repository.NewBlogRepository(dbConn)
	tagRepo := repository.NewTagRepository(dbConn)
	newsletterRepo := repository.NewNewsletterRepository(dbConn)

	// Сервисы.
	portfolioService := service.NewPortfolioService(portfolioRepo, educationRepo, workExperienceRepo, skillRepo, projectRepo)
	blogService := service.NewBlogService(blogRepo, tagRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)

	// HTTP хэндлеры.
	accessHandler := httpHandlers.NewAccessHandler(accessService)
	portfolioHandler := httpHandlers.NewPortfolioHandler(portfolioService)
	educationHandler := httpHandlers.NewEducationHandler(portfolioService)
	workExperienceHandler := httpHandlers.NewWorkExperienceHandler(portfolioService)
	skillHandler := httpHandlers.NewSkillHandler(portfolioService)
	projectHandler := httpHandlers.NewProjectHandler(portfolioService)
	blogHandler := httpHandlers.NewBlogHandler(blogService, cfg.PublicBaseURL)
	tagHandler := httpHandlers.NewTagHandler(blogService)
	newsletterHandler := httpHandlers.NewNewsletterHandler(newsletterService, cfg.PublicBaseURL)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(
		cfg,
		accessHandler,
		portfolioHandler,
		educationHandler,
		workExperienceHandler,
		skillHandler,
		projectHandler,
		blogHandler,
		tagHandler,
		newsletterHandler,
		healthHandler,
		accessService,
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}

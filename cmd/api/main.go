package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio-backend/internal/accounts"
	"folio-backend/internal/auth"
	"folio-backend/internal/cache"
	"folio-backend/internal/config"
	"folio-backend/internal/content"
	"folio-backend/internal/dashboard"
	"folio-backend/internal/db"
	"folio-backend/internal/messages"
	"folio-backend/internal/middleware"
	"folio-backend/internal/notifications"
	"folio-backend/internal/projects"
	"folio-backend/internal/skills"
	"folio-backend/internal/storage"
	"folio-backend/internal/uploads"
	"folio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "folio-backend",
		}
	}

	var mediaStore storage.Store
	var diskStore *storage.DiskStore
	switch cfg.StorageDriver {
	case "s3":
		s3Store, err := storage.NewS3(storage.S3Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			logger.Error("s3 storage init failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := s3Store.EnsureBucket(ctx); err != nil {
			logger.Error("s3 bucket check failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("s3 storage ready", slog.String("bucket", cfg.S3Bucket))
		mediaStore = s3Store
	default:
		diskStore, err = storage.NewDisk(cfg.MediaDir, cfg.MediaBaseURL)
		if err != nil {
			logger.Error("disk storage init failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("disk storage ready", slog.String("dir", cfg.MediaDir))
		mediaStore = diskStore
	}

	mailer := notifications.NewMessageMailer(
		notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox),
		cfg.OwnerEmail,
		cfg.OwnerName,
	)
	if mailer == nil {
		logger.Info("message notifications disabled")
	} else {
		logger.Info("message notifications enabled", slog.String("owner", cfg.OwnerEmail))
	}

	val := validation.New()

	accountsRepo := accounts.NewRepository(cols.Users)
	accountsService := accounts.NewService(accountsRepo, cfg.Timezone)
	accountsHandler := accounts.NewHandler(accountsService, val, logger, jwtManager, cfg.CookieSecure, cfg.AdminSetupKey)

	projectsRepo := projects.NewRepository(cols.Projects)
	projectsService := projects.NewService(projectsRepo, cfg.Timezone)
	projectsHandler := projects.NewHandler(projectsService, val, logger, cacheStore, cacheTTL)

	skillsRepo := skills.NewRepository(cols.Skills)
	skillsService := skills.NewService(skillsRepo, cfg.Timezone)
	skillsHandler := skills.NewHandler(skillsService, val, logger, cacheStore, cacheTTL)

	var messageMailer messages.Mailer
	if mailer != nil {
		messageMailer = mailer
	}
	messagesRepo := messages.NewRepository(cols.Messages)
	messagesService := messages.NewService(messagesRepo, cfg.Timezone, messageMailer, logger)
	messagesHandler := messages.NewHandler(messagesService, val, logger)

	contentRepo := content.NewRepository(cols.SiteContent)
	contentService := content.NewService(contentRepo, cfg.Timezone)
	contentHandler := content.NewHandler(contentService, val, logger, cacheStore, cacheTTL)

	uploadsHandler := uploads.NewHandler(mediaStore, logger)
	dashboardHandler := dashboard.NewHandler(projectsService, skillsService, messagesService, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/projects", projectsHandler.PublicList)
		api.Get("/projects/{slug}", projectsHandler.PublicGetBySlug)
		api.Get("/skills", skillsHandler.PublicList)
		api.Get("/content", contentHandler.PublicGet)
		api.With(contactLimiter.Middleware).Post("/messages", messagesHandler.Create)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/register", accountsHandler.Register)
			admin.Post("/login", accountsHandler.Login)
			admin.Post("/refresh", accountsHandler.Refresh)
			admin.Post("/logout", accountsHandler.Logout)
			admin.Get("/session", accountsHandler.Session)

			// Important (chi): middlewares must be attached before defining
			// routes, so the protected surface lives in a sub-router.
			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(jwtManager))

				protected.Get("/projects", projectsHandler.AdminList)
				protected.Post("/projects", projectsHandler.AdminUpsert)
				protected.Delete("/projects/{id}", projectsHandler.AdminDelete)

				protected.Get("/skills", skillsHandler.AdminList)
				protected.Post("/skills", skillsHandler.AdminUpsert)
				protected.Delete("/skills/{id}", skillsHandler.AdminDelete)

				protected.Get("/messages", messagesHandler.AdminList)
				protected.Delete("/messages/{id}", messagesHandler.AdminDelete)

				protected.Get("/content", contentHandler.AdminGet)
				protected.Put("/content", contentHandler.AdminSave)

				protected.Post("/uploads", uploadsHandler.Create)
				protected.Get("/stats", dashboardHandler.Stats)

				protected.Post("/users", accountsHandler.AdminCreateUser)
				protected.Patch("/users/{id}/password", accountsHandler.AdminUpdatePassword)
			})
		})
	})

	if diskStore != nil {
		fileServer := http.FileServer(http.Dir(diskStore.Dir()))
		r.Handle("/media/*", http.StripPrefix("/media/", fileServer))
	}

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

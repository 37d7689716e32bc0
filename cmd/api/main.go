package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/config"
	"github.com/gfsouza/vendas-crm/internal/infra/database"
	"github.com/gfsouza/vendas-crm/internal/infra/http/handlers"
	"github.com/gfsouza/vendas-crm/internal/infra/http/middleware"
	"github.com/gfsouza/vendas-crm/internal/infra/integration/viacep"
	"github.com/gfsouza/vendas-crm/internal/infra/mail"
	"github.com/gfsouza/vendas-crm/internal/infra/queue"
	"github.com/gfsouza/vendas-crm/internal/infra/storage"
	"github.com/gfsouza/vendas-crm/internal/usecase"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuração inválida", zap.Error(err))
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("falha ao conectar no banco", zap.Error(err))
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPort)
	if err != nil {
		logger.Fatal("falha ao conectar no RabbitMQ", zap.Error(err))
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	s3Storage, err := storage.NewS3Storage(context.Background(), cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		logger.Fatal("falha ao configurar o storage S3", zap.Error(err))
	}

	// 1. Repositórios
	saleRepo := database.NewSaleRepository(db)
	userRepo := database.NewUserRepository(db)
	teamRepo := database.NewTeamRepository(db)
	planRepo := database.NewPlanRepository(db)
	docRepo := database.NewDocumentRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// 2. Gateways e Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.LoginURL,
	)
	cepClient := viacep.NewClient(cfg.ViaCEPURL)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	// 3. Worker (consome a fila e envia os e-mails de boas-vindas)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, logger)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createSaleUC := usecase.NewCreateSaleUseCase(saleRepo, planRepo, teamRepo, producer, logger)
	updateStatusUC := usecase.NewUpdateSaleStatusUseCase(saleRepo, logger)
	updateCustomerUC := usecase.NewUpdateCustomerUseCase(saleRepo, logger)
	salesQueryUC := usecase.NewSalesQueryUseCase(saleRepo)
	uploadDocUC := usecase.NewUploadDocumentUseCase(saleRepo, docRepo, s3Storage, logger)
	createUserUC := usecase.NewCreateUserUseCase(userRepo, teamRepo, producer, logger)
	userLifecycleUC := usecase.NewUserLifecycleUseCase(userRepo, logger)
	teamUC := usecase.NewTeamUseCase(teamRepo, userRepo, logger)
	loginUC := usecase.NewLoginUseCase(userRepo, tokens, logger)

	// 5. Handlers
	saleHandler := handlers.NewSaleHandler(createSaleUC, updateStatusUC, updateCustomerUC, salesQueryUC)
	docHandler := handlers.NewDocumentHandler(uploadDocUC)
	userHandler := handlers.NewUserHandler(loginUC, createUserUC, userLifecycleUC, userRepo)
	teamHandler := handlers.NewTeamHandler(teamUC, teamRepo)
	cepHandler := handlers.NewCEPHandler(cepClient, logger)
	leadHandler := handlers.NewLeadHandler(leadRepo)
	planHandler := handlers.NewPlanHandler(planRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Rotas públicas
	r.Post("/login", userHandler.Login)
	r.Get("/health", healthHandler.Handle)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/cep/{cep}", cepHandler.Lookup)

	// Rotas autenticadas
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens))

		r.Post("/sales", saleHandler.Create)
		r.Get("/sales", saleHandler.List)
		r.Get("/sales/{id}", saleHandler.Get)
		r.Get("/sales/{id}/actions", saleHandler.NextActions)
		r.Patch("/sales/{id}/status", saleHandler.UpdateStatus)
		r.Patch("/sales/{id}/customer", saleHandler.UpdateCustomer)
		r.Post("/sales/{id}/documents", docHandler.Upload)
		r.Get("/sales/{id}/documents", docHandler.ListBySale)
		r.Get("/plans", planHandler.List)
		r.Get("/dashboard", saleHandler.Dashboard)

		r.Post("/leads", leadHandler.CaptureLead)
		r.Get("/leads", leadHandler.List)

		r.Post("/users", userHandler.Create)
		r.Get("/users", userHandler.List)
		r.Patch("/users/{id}/deactivate", userHandler.Deactivate)
		r.Patch("/users/{id}/reactivate", userHandler.Reactivate)
		r.Delete("/users/{id}", userHandler.Delete)

		r.Post("/teams", teamHandler.Create)
		r.Get("/teams", teamHandler.List)
		r.Patch("/teams/{id}", teamHandler.Rename)
		r.Patch("/teams/{id}/supervisor", teamHandler.AssignSupervisor)
	})

	logger.Info("servidor no ar", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("servidor encerrou com erro", zap.Error(err))
	}
}

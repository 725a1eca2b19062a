package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/route"
	"github.com/padocadigital/gestao-padaria/internal/adapter/repository"
	"github.com/padocadigital/gestao-padaria/internal/domain/projection"
	"github.com/padocadigital/gestao-padaria/internal/domain/settlement"
	"github.com/padocadigital/gestao-padaria/internal/infrastructure/database"
	"github.com/padocadigital/gestao-padaria/pkg/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	pool   *pgxpool.Pool
	log    logger.Logger

	settlementController *controller.SettlementController
	ledgerController     *controller.LedgerController
	balanceController    *controller.BalanceController
	productController    *controller.ProductController
	saleController       *controller.SaleController
	scheduleController   *controller.ScheduleController
	projectionController *controller.ProjectionController
	authController       *controller.AuthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Conectar ao banco de dados
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}

	// Criar repositórios
	productRepo := repository.NewProductRepository(pool)
	saleRepo := repository.NewSaleRepository(pool)
	balanceRepo := repository.NewBalanceRepository(pool)
	ledgerRepo := repository.NewLedgerRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Criar serviços de domínio
	settlementService := settlement.NewService(
		productRepo,
		saleRepo,
		balanceRepo,
		ledgerRepo,
		auditRepo,
		settlement.Config{
			LedgerUserID:      os.Getenv("SETTLEMENT_LEDGER_USER_ID"),
			LedgerInstituteID: os.Getenv("SETTLEMENT_LEDGER_INSTITUTE_ID"),
		},
		log,
	)
	projectionService := projection.NewService(balanceRepo)

	// Criar controllers
	app := &App{
		pool: pool,
		log:  log,

		settlementController: controller.NewSettlementController(settlementService, log),
		ledgerController:     controller.NewLedgerController(ledgerRepo, auditRepo, log),
		balanceController:    controller.NewBalanceController(balanceRepo),
		productController:    controller.NewProductController(productRepo, log),
		saleController:       controller.NewSaleController(saleRepo, auditRepo, settlementService, log),
		scheduleController:   controller.NewScheduleController(scheduleRepo, log),
		projectionController: controller.NewProjectionController(projectionService),
		authController:       controller.NewAuthController(userRepo, log),
	}

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	app.router = router
	app.setupRoutes("/api/v1")

	return app, nil
}

// corsMiddleware configura o CORS da API conforme o ambiente
func corsMiddleware() gin.HandlerFunc {
	config := cors.DefaultConfig()

	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if allowedOrigins != "" {
		config.AllowOrigins = splitAndTrim(allowedOrigins)
	} else {
		config.AllowAllOrigins = true
	}

	config.AddAllowMethods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS")
	config.AddAllowHeaders("Origin", "Content-Type", "Authorization", "institute-id")
	config.AddExposeHeaders("Content-Length")

	return cors.New(config)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(basePath string) {
	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, a.authController)
	route.SetupSettlementRoutes(api, a.settlementController)
	route.SetupLedgerRoutes(api, a.ledgerController)
	route.SetupBalanceRoutes(api, a.balanceController)
	route.SetupProductRoutes(api, a.productController)
	route.SetupSaleRoutes(api, a.saleController)
	route.SetupScheduleRoutes(api, a.scheduleController)
	route.SetupProjectionRoutes(api, a.projectionController)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

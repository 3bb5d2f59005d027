package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/contapyme/contapyme/internal/adapter/api/controller"
	"github.com/contapyme/contapyme/internal/adapter/api/route"
	"github.com/contapyme/contapyme/internal/adapter/repository"
	"github.com/contapyme/contapyme/internal/domain/payroll"
	"github.com/contapyme/contapyme/internal/domain/tax"
	"github.com/contapyme/contapyme/internal/infrastructure/database"
	"github.com/contapyme/contapyme/internal/service"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// App contiene el router y las dependencias de la aplicación
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp inicializa la base de datos, los repositorios, los servicios y las
// rutas de la API
func NewApp(ctx context.Context, log logger.Logger) (*App, error) {
	db, err := database.NewPostgresPool(ctx)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	cfg := tax.DefaultConfig()
	rates := payroll.DefaultRates()

	userRepo := repository.NewUserRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	clientRepo := repository.NewClientRepository(db)
	transactionRepo := repository.NewTransactionRepository(db, cfg)
	workerRepo := repository.NewWorkerRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)
	f29Repo := repository.NewF29Repository(db)
	f22Repo := repository.NewF22Repository(db)
	alertRepo := repository.NewAlertRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)

	f29Service := service.NewF29Service(f29Repo, transactionRepo, cfg)
	f22Service := service.NewF22Service(f22Repo, f29Repo, cfg)
	payrollService := service.NewPayrollService(workerRepo, settlementRepo, businessRepo, cfg, rates)

	authController := controller.NewAuthController(userRepo, businessRepo, jwtService, log)
	businessController := controller.NewBusinessController(businessRepo, userRepo, jwtService, log)
	productController := controller.NewProductController(productRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, log)
	clientController := controller.NewClientController(clientRepo, log)
	transactionController := controller.NewTransactionController(transactionRepo, log)
	workerController := controller.NewWorkerController(workerRepo, log)
	settlementController := controller.NewSettlementController(payrollService, settlementRepo, log)
	f29Controller := controller.NewF29Controller(f29Service, log)
	f22Controller := controller.NewF22Controller(f22Service, log)
	alertController := controller.NewAlertController(alertRepo, log)
	certificateController := controller.NewCertificateController(certificateRepo, log)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController)
	route.RegisterBusinessRoutes(api, businessController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterSupplierRoutes(api, supplierController)
	route.RegisterClientRoutes(api, clientController)
	route.RegisterTransactionRoutes(api, transactionController)
	route.RegisterWorkerRoutes(api, workerController)
	route.RegisterSettlementRoutes(api, settlementController)
	route.RegisterF29Routes(api, f29Controller)
	route.RegisterF22Routes(api, f22Controller)
	route.RegisterAlertRoutes(api, alertController)
	route.RegisterSIIRoutes(api, certificateController)

	return &App{router: router, db: db, logger: log}, nil
}

// Run inicia el servidor HTTP en el puerto configurado
func (a *App) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(fmt.Sprintf(":%s", port))
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.MaxAge = 12 * time.Hour
	return config
}

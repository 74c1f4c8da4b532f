package main

import (
	"time"

	"crm-backend/config"
	"crm-backend/internal/handler"
	"crm-backend/internal/logger"
	"crm-backend/internal/middleware"
	"crm-backend/internal/models"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"
	"crm-backend/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Server.Env)

	// 2. Connect to Database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Msg("database connection established")

	// 3. Run Migrations
	err = db.AutoMigrate(
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Party{},
		&models.Product{},
		&models.CompanyInfo{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// 3a. Seed Company Profile
	if err := database.SeedCompanyInfo(db, cfg.Company); err != nil {
		log.Fatal().Err(err).Msg("failed to seed company info")
	}

	// 4. Initialize Router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Wire Repositories, Services, Handlers
	invoiceRepo := repository.NewInvoiceRepo(db)
	partyRepo := repository.NewPartyRepo(db)
	productRepo := repository.NewProductRepo(db)
	companyRepo := repository.NewCompanyRepo(db)

	invoiceSvc := service.NewInvoiceService(invoiceRepo)

	invoiceHandler := handler.NewInvoiceHandler(invoiceSvc, companyRepo, log)
	reportHandler := handler.NewReportHandler(invoiceSvc, log)
	partyHandler := handler.NewPartyHandler(partyRepo, log)
	productHandler := handler.NewProductHandler(productRepo, log)
	companyHandler := handler.NewCompanyHandler(companyRepo, log)

	// 6. Routes (paths preserved from the legacy API)
	r.POST("/api/create_invoice", invoiceHandler.Create)
	r.GET("/api/invoices", invoiceHandler.List)
	r.GET("/api/invoices/:id", invoiceHandler.Get)
	r.GET("/api/invoices/:id/pdf", invoiceHandler.RenderPDF)
	r.GET("/api/sales", reportHandler.DailySales)

	r.GET("/api/customer/transection", invoiceHandler.ListAll)
	r.GET("/api/customer/invoice/items", invoiceHandler.ListAllItems)

	r.GET("/api/venders", partyHandler.List)
	r.POST("/api/venders", partyHandler.Create)

	r.GET("/data", productHandler.List)
	r.POST("/data", productHandler.Create)
	r.PUT("/data/:sl", productHandler.Update)
	r.DELETE("/data/:sl", productHandler.Delete)

	r.GET("/company", companyHandler.Get)

	// 7. Start Server
	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

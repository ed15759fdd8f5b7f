package routes

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hospital_billing/internal/adapter/export"
	"hospital_billing/internal/adapter/http/handlers"
	"hospital_billing/internal/adapter/persistence/repository"
	"hospital_billing/internal/config"
	"hospital_billing/internal/infrastructure/database"
	"hospital_billing/internal/infrastructure/payments"
	"hospital_billing/internal/observability/metrics"
	"hospital_billing/internal/usecase"
	"hospital_billing/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	metrics.Init()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := getRoutes(context.Background(), cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	log.Printf("[app][routes] listening port=%s backend=%s", cfg.Port, cfg.DataBackend)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg *config.Config) error {
	recordRepo, paymentRepo, err := newRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.CacheTTL > 0 {
		log.Printf("[app][routes] record cache enabled ttl=%s", cfg.CacheTTL)
		recordRepo = repository.NewRecordCacheRepository(recordRepo, cfg.CacheTTL)
	}

	profile, err := config.LoadInvoiceProfile(cfg.InvoiceProfileFile)
	if err != nil {
		return err
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("[app][routes] payment gateway disabled err=%v", err)
	} else {
		paymentGateway = mpGateway
	}

	reportUseCase := usecase.NewReportUseCase(recordRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(recordRepo, export.NewInvoicePrinter(), profile)
	exportUseCase := usecase.NewExportUseCase(reportUseCase,
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		export.NewXLSXExporter(),
	)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, recordRepo, paymentGateway)

	reportHandler := handlers.NewReportHandler(reportUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)
	paymentHandler := handlers.NewInvoicePaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, reportHandler, invoiceHandler, exportHandler, paymentHandler)
	return nil
}

func newRepositories(ctx context.Context, cfg *config.Config) (interfaces.IRecordRepository, interfaces.IInvoicePaymentRepository, error) {
	switch cfg.DataBackend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		records := repository.NewRecordDynamoRepository(ddb, cfg.RecordsTable)
		if cfg.SeedSampleData {
			if _, err := repository.SeedRecords(ctx, records, repository.SampleRecords()); err != nil {
				return nil, nil, fmt.Errorf("seed dynamodb: %w", err)
			}
		}
		return records, repository.NewInvoicePaymentDynamoRepository(ddb, cfg.PaymentsTable), nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		records := repository.NewRecordSQLiteRepository(db)
		if cfg.SeedSampleData {
			if _, err := repository.SeedRecords(ctx, records, repository.SampleRecords()); err != nil {
				return nil, nil, fmt.Errorf("seed sqlite: %w", err)
			}
		}
		return records, repository.NewInvoicePaymentSQLiteRepository(db), nil

	default:
		log.Printf("[app][routes] using in-memory sample records count=%d", len(repository.SampleRecords()))
		return repository.NewRecordMemoryRepository(repository.SampleRecords()), repository.NewInvoicePaymentMemoryRepository(), nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"invtrack/internal/config"
	"invtrack/internal/handler"
	"invtrack/internal/middleware"
	"invtrack/internal/repository"
	"invtrack/internal/service"
	"invtrack/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	itemRepo := repository.NewItemRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Worker dispatcher — alert notifications are enqueued best-effort
	dispatcher := worker.NewDispatcher(rdb)
	evaluator := service.NewAlertEvaluator(alertRepo, dispatcher)

	itemSvc := service.NewItemService(itemRepo, evaluator)
	supplierSvc := service.NewSupplierService(supplierRepo)
	transactionSvc := service.NewTransactionService(transactionRepo, itemRepo, evaluator)
	alertSvc := service.NewAlertService(alertRepo)
	eventSvc := service.NewEventService(eventRepo)
	forecastSvc := service.NewForecastService(cfg.ForecastTimeout())

	// ── Handlers ─────────────────────────────────────────────────────────────
	itemsH := handler.NewItemsHandler(itemSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	alertsH := handler.NewAlertsHandler(alertSvc)
	eventsH := handler.NewEventsHandler(eventSvc)
	forecastH := handler.NewForecastHandler(forecastSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	// Trailing-slash collection paths are kept for frontend compatibility.

	r.GET("/health", handler.Health(db, rdb))

	items := r.Group("/items")
	{
		items.GET("/", itemsH.List)
		items.POST("/", itemsH.Create)
		items.GET("/:id", itemsH.Get)
		items.PUT("/:id", itemsH.Update)
	}

	suppliers := r.Group("/suppliers")
	{
		suppliers.GET("/", suppliersH.List)
		suppliers.POST("/", suppliersH.Create)
	}

	transactions := r.Group("/transactions")
	{
		transactions.GET("/", transactionsH.List)
		transactions.POST("/", transactionsH.Create)
		transactions.DELETE("/:id", transactionsH.Delete)
	}

	alerts := r.Group("/alerts")
	{
		alerts.GET("/", alertsH.List)
		alerts.POST("/", alertsH.Create)
	}

	events := r.Group("/events")
	{
		events.GET("/", eventsH.List)
		events.POST("/", eventsH.Create)
	}

	r.POST("/api/forecast", forecastH.Predict)

	return r
}

package routes

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "logistics_backoffice/docs" // swagger spec
	"logistics_backoffice/internal/adapter/http/handlers"
	"logistics_backoffice/internal/adapter/http/middleware"
	"logistics_backoffice/internal/adapter/persistence/repository"
	"logistics_backoffice/internal/domain/identifier"
	"logistics_backoffice/internal/infrastructure/cache"
	"logistics_backoffice/internal/infrastructure/database"
	"logistics_backoffice/internal/infrastructure/events"
	"logistics_backoffice/internal/usecase"
	"logistics_backoffice/internal/usecase/interfaces"
	"logistics_backoffice/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PORT = 8080

const defaultAnalyticsCacheTTL = 5 * time.Minute

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Shipments           *handlers.ShipmentHandler
	LogisticsExpenses   *handlers.LogisticsExpenseHandler
	Transporters        *handlers.TransporterHandler
	Owners              *handlers.OwnerHandler
	Liabilities         *handlers.LiabilityHandler
	PartnershipAccounts *handlers.PartnershipAccountHandler
	PropertyAccounts    *handlers.PropertyAccountHandler
}

// Run will start the server and release the broker and cache clients once it
// stops, either on SIGINT/SIGTERM or when the listener fails.
func Run() {
	h, closers := buildHandlers()
	router := NewRouter(h, os.Getenv("AUTH_TOKEN"))

	port := pkg.GetenvDefault("PORT", strconv.Itoa(PORT))
	srv := &http.Server{Addr: ":" + port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			closeAll(closers)
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	case <-ctx.Done():
		log.Printf("[routes] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[routes] shutdown: %v", err)
		}
	}
	closeAll(closers)
}

// closeAll closes every client, logging failures so one bad close does not
// skip the rest.
func closeAll(closers []io.Closer) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Printf("[routes] close: %v", err)
		}
	}
}

// NewRouter mounts /ping and /swagger publicly and every entity route under
// /v1 behind the auth gate.
func NewRouter(h Handlers, authToken string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(&router.RouterGroup)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	private := v1.Group("", middleware.RequireToken(authToken))
	addLogisticsRoutes(private, h.Shipments, h.LogisticsExpenses)
	addAccountingRoutes(private, h.Transporters, h.Owners, h.Liabilities, h.PartnershipAccounts, h.PropertyAccounts)
	return router
}

func buildHandlers() (Handlers, []io.Closer) {
	ddb := database.ConnectDynamoDB()

	shipmentRepo := repository.NewShipmentDynamoRepository(ddb)
	expenseRepo := repository.NewLogisticsExpenseDynamoRepository(ddb)
	transporterRepo := repository.NewTransporterDynamoRepository(ddb)
	ownerRepo := repository.NewOwnerDynamoRepository(ddb)
	liabilityRepo := repository.NewLiabilityDynamoRepository(ddb)
	partnershipRepo := repository.NewPartnershipAccountDynamoRepository(ddb)
	propertyRepo := repository.NewPropertyAccountDynamoRepository(ddb)

	var seq identifier.Sequence = identifier.NewCountSequence(shipmentRepo)
	if os.Getenv("SEQUENCE_MODE") == "atomic" {
		log.Printf("[routes] shipment sequence uses the atomic counter")
		seq = repository.NewDynamoCounterSequence(ddb, repository.ShipmentCounterName)
	}

	var closers []io.Closer

	var publisher interfaces.IEventPublisher = events.NoopPublisher{}
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		kafka := events.NewKafkaPublisher(broker, pkg.GetenvDefault("KAFKA_TOPIC", "logistics-events"))
		publisher = kafka
		closers = append(closers, kafka)
	}

	var analyticsCache interfaces.ICache = cache.NoopCache{}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisCache := cache.NewRedisCache(addr)
		analyticsCache = redisCache
		closers = append(closers, redisCache)
	}
	ttl := defaultAnalyticsCacheTTL
	if v := os.Getenv("ANALYTICS_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("[routes] invalid ANALYTICS_CACHE_TTL=%q, using %s", v, ttl)
		} else {
			ttl = d
		}
	}

	shipmentUseCase := usecase.NewShipmentUseCase(shipmentRepo, transporterRepo, identifier.NewGenerator(seq), publisher, analyticsCache, ttl)
	expenseUseCase := usecase.NewLogisticsExpenseUseCase(expenseRepo, shipmentRepo, transporterRepo, publisher)

	return Handlers{
		Shipments:           handlers.NewShipmentHandler(shipmentUseCase),
		LogisticsExpenses:   handlers.NewLogisticsExpenseHandler(expenseUseCase),
		Transporters:        handlers.NewTransporterHandler(usecase.NewTransporterUseCase(transporterRepo)),
		Owners:              handlers.NewOwnerHandler(usecase.NewOwnerUseCase(ownerRepo)),
		Liabilities:         handlers.NewLiabilityHandler(usecase.NewLiabilityUseCase(liabilityRepo, ownerRepo)),
		PartnershipAccounts: handlers.NewPartnershipAccountHandler(usecase.NewPartnershipAccountUseCase(partnershipRepo, ownerRepo)),
		PropertyAccounts:    handlers.NewPropertyAccountHandler(usecase.NewPropertyAccountUseCase(propertyRepo, ownerRepo)),
	}, closers
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, pkg.HTTPError{
			Status:  pkg.StatusError,
			Message: "An internal error occurred",
		})
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": pkg.StatusSuccess, "message": "pong"})
	})
}


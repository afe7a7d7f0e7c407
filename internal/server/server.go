package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	notifmemory "github.com/oblik-ua/oblik-sdk/modules/notification/infrastructure/persistence/memory"
	notifcontrollers "github.com/oblik-ua/oblik-sdk/modules/notification/presentation/controllers"
	notifservices "github.com/oblik-ua/oblik-sdk/modules/notification/services"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence/memory"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/presentation/controllers"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/services"
	"github.com/oblik-ua/oblik-sdk/pkg/configuration"
	"github.com/oblik-ua/oblik-sdk/pkg/eventbus"
	"github.com/oblik-ua/oblik-sdk/pkg/middleware"
	"github.com/oblik-ua/oblik-sdk/pkg/server"
)

type Options struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Pool          *pgxpool.Pool
}

// Default assembles the full application: repositories per the configured
// storage backend, services, event listeners and API controllers.
func Default(options *Options) (*server.HTTPServer, error) {
	conf := options.Configuration

	var (
		personRepo person.Repository
		dictRepo   dictionary.Repository
	)
	switch conf.Storage {
	case "postgres":
		personRepo = persistence.NewPersonRepository(options.Pool)
		dictRepo = persistence.NewDictionaryRepository(options.Pool)
	default:
		personRepo = memory.NewPersonRepository(conf.SnapshotPath, options.Logger)
		dictRepo = memory.DefaultDictionaryRepository()
	}
	notifRepo := notifmemory.NewNotificationRepository()

	bus := eventbus.NewEventPublisher(options.Logger)

	dictService := services.NewDictionaryService(dictRepo)
	personService := services.NewPersonService(personRepo, bus)
	importService := services.NewImportService(personRepo, dictService, bus, options.Logger)
	exportService := services.NewExcelExportService(personRepo)
	dashboardService := services.NewDashboardService(personRepo, dictRepo)
	notifService := notifservices.NewNotificationService(notifRepo, options.Logger)
	notifService.RegisterEventListeners(bus)

	serverControllers := []server.Controller{
		controllers.NewPersonAPIController(personService, exportService, conf.PageSize, conf.MaxPageSize),
		controllers.NewImportAPIController(importService, conf.MaxUploadSize),
		controllers.NewDictionaryAPIController(dictService),
		controllers.NewDashboardAPIController(dashboardService),
		notifcontrollers.NewNotificationAPIController(notifService, conf.PageSize),
		&healthController{pool: options.Pool, storage: conf.Storage},
	}
	if conf.Prometheus.Enabled {
		serverControllers = append(serverControllers, &metricsController{path: conf.Prometheus.Path})
	}

	middlewares := []mux.MiddlewareFunc{
		middleware.LogRequests(options.Logger),
	}

	return server.NewHTTPServer(
		serverControllers,
		middlewares,
		http.NotFoundHandler(),
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}),
	), nil
}

const healthPingTimeout = 2 * time.Second

type healthController struct {
	pool    *pgxpool.Pool
	storage string
}

func (c *healthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.handle).Methods(http.MethodGet)
}

func (c *healthController) handle(w http.ResponseWriter, r *http.Request) {
	if c.storage == "postgres" && c.pool != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := c.pool.Ping(ctx); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type metricsController struct {
	path string
}

func (c *metricsController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.Handler()).Methods(http.MethodGet)
}

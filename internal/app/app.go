package app

import (
	"log/slog"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/aircraft"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/announcements"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/auth"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/chemicals"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/dashboard"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/departments"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/kits"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/observability"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/orders"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/rbac"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/reports"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/roles"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/security"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/tools"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/users"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/warehouses"
)

// App wires the platform pieces and feature services into a single entry
// point for embedding clients.
type App struct {
	Config  *Config
	Logger  *slog.Logger
	Session *shared.Session
	Client  *restc.Client
	Cache   *store.Store
	Metrics *observability.Metrics

	Auth          *auth.Service
	Users         *users.Service
	Roles         *roles.Service
	RBAC          *rbac.Service
	Departments   *departments.Service
	Announcements *announcements.Service
	Aircraft      *aircraft.Service
	Chemicals     *chemicals.Service
	Tools         *tools.Service
	Warehouses    *warehouses.Service
	Kits          *kits.Service
	Orders        *orders.Service
	Reports       *reports.Service
	Dashboard     *dashboard.Service
	Security      *security.Service
}

// New assembles the application from configuration.
func New(cfg *Config) *App {
	logger := NewLogger(cfg)
	session := shared.NewSession()
	if cfg.APIToken != "" {
		session.SetToken(cfg.APIToken)
	}

	metrics := observability.NewMetrics()

	client := restc.NewClient(cfg.APIBaseURL, session, logger)
	client.SetTimeout(cfg.RequestTimeout)
	client.SetRecorder(metrics)

	cache := store.New(cfg.CacheTTL)
	cache.SetRecorder(metrics)

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Session: session,
		Client:  client,
		Cache:   cache,
		Metrics: metrics,
	}

	app.Auth = auth.NewService(logger, auth.NewRepository(client), session, cache)
	app.Users = users.NewService(users.NewRepository(client), cache)
	app.Roles = roles.NewService(roles.NewRepository(client), cache)
	app.RBAC = rbac.NewService(rbac.NewRepository(client), cache, session)
	app.Departments = departments.NewService(departments.NewRepository(client), cache)
	app.Announcements = announcements.NewService(announcements.NewRepository(client), cache)
	app.Aircraft = aircraft.NewService(aircraft.NewRepository(client), cache)
	app.Chemicals = chemicals.NewService(chemicals.NewRepository(client), cache)
	app.Tools = tools.NewService(tools.NewRepository(client), cache)
	app.Warehouses = warehouses.NewService(warehouses.NewRepository(client), cache)
	app.Kits = kits.NewService(kits.NewRepository(client), cache)
	app.Orders = orders.NewService(orders.NewRepository(client), cache)
	app.Reports = reports.NewService(reports.NewRepository(client), cache)
	app.Dashboard = dashboard.NewService(dashboard.NewRepository(client), cache)
	app.Security = security.NewService(security.NewRepository(client), cache, session)

	return app
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/contacts/internal/config"
	"github.com/smallbiznis/contacts/internal/country"
	countrydomain "github.com/smallbiznis/contacts/internal/country/domain"
	"github.com/smallbiznis/contacts/internal/observability"
	obsmiddleware "github.com/smallbiznis/contacts/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/contacts/internal/observability/metrics"
	obstracing "github.com/smallbiznis/contacts/internal/observability/tracing"
	"github.com/smallbiznis/contacts/internal/person"
	persondomain "github.com/smallbiznis/contacts/internal/person/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	country.Module,
	person.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	countrySvc countrydomain.Service
	personSvc  persondomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	CountrySvc countrydomain.Service
	PersonSvc  persondomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		countrySvc: p.CountrySvc,
		personSvc:  p.PersonSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	countries := api.Group("/countries")
	{
		countries.POST("", s.AddCountry)
		countries.GET("", s.ListCountries)
		countries.GET("/:id", s.GetCountryByID)
	}

	persons := api.Group("/persons")
	{
		persons.POST("", s.AddPerson)
		persons.GET("", s.ListPersons)
		persons.GET("/:id", s.GetPersonByID)
		persons.PUT("/:id", s.UpdatePerson)
		persons.DELETE("/:id", s.DeletePerson)
	}

	// Bulk routes live outside the resource groups so the static segments do
	// not collide with the :id wildcards.
	api.POST("/imports/countries", s.ImportCountries)
	api.GET("/exports/persons.csv", s.ExportPersonsCSV)
	api.GET("/exports/persons.xlsx", s.ExportPersonsExcel)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

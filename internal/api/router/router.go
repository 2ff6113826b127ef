package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planeacion/backend/config"
	"planeacion/backend/internal/api/handler"
	"planeacion/backend/internal/api/middleware"
	"planeacion/backend/internal/service"
	"planeacion/backend/pkg/validate"
)

// Setup builds the gin engine.
func Setup(cfg *config.Config, h *handler.Handler, authSvc service.AuthService, logger *zap.Logger) (*gin.Engine, error) {
	if err := validate.RegisterGin(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	if cfg.Server.MaxBodyBytes > 0 {
		r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	}

	// ── probes ──
	r.GET("/health", h.Health.Health)
	r.GET("/db-check", h.Health.DBCheck)

	// ── academic units (public) ──
	unidades := r.Group("/unidades")
	{
		unidades.GET("", h.Unidad.List)
		unidades.POST("", h.Unidad.Create)
		unidades.GET("/:id", h.Unidad.Get)
		unidades.PATCH("/:id", h.Unidad.Update)
		unidades.DELETE("/:id", h.Unidad.Delete)
	}

	// ── auth ──
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// ── authenticated ──
	authorized := r.Group("")
	authorized.Use(middleware.Auth(authSvc, logger))
	{
		authorized.GET("/me", h.Auth.Me)

		planeaciones := authorized.Group("/planeaciones")
		{
			planeaciones.GET("", h.Planeacion.List)
			planeaciones.POST("", h.Planeacion.Create)
			planeaciones.GET("/:id", h.Planeacion.Get)
			planeaciones.PUT("/:id", h.Planeacion.Update)
			planeaciones.DELETE("/:id", h.Planeacion.Delete)
			planeaciones.GET("/:id/datos-generales", h.Planeacion.GetDatosGenerales)
			planeaciones.PUT("/:id/datos-generales", h.Planeacion.UpdateDatosGenerales)
		}
	}

	return r, nil
}

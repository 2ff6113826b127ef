package handler

import (
	"go.uber.org/zap"

	"planeacion/backend/internal/service"
)

// Handler groups every HTTP handler.
type Handler struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Unidad     *UnidadHandler
	Planeacion *PlaneacionHandler
}

// NewHandler creates the Handler bundle. probe backs GET /db-check.
func NewHandler(svc *service.Service, probe ProbeFunc, logger *zap.Logger) *Handler {
	return &Handler{
		Health:     NewHealthHandler(probe, logger),
		Auth:       NewAuthHandler(svc.Auth, logger),
		Unidad:     NewUnidadHandler(svc.Unidad, logger),
		Planeacion: NewPlaneacionHandler(svc.Planeacion, logger),
	}
}

package service

import (
	"time"

	"go.uber.org/zap"

	"planeacion/backend/internal/repository"
	"planeacion/backend/pkg/jwt"
	"planeacion/backend/pkg/password"
)

// Service bundles every service behind one handle.
type Service struct {
	Auth       AuthService
	Unidad     UnidadService
	Planeacion PlaneacionService
}

// NewService wires the services.
func NewService(
	repo *repository.Repository,
	tokens *jwt.Manager,
	hasher *password.Hasher,
	logger *zap.Logger,
) *Service {
	unidades := NewUnidadService(repo, logger)
	return &Service{
		Auth:       NewAuthService(repo, unidades, tokens, hasher, logger, time.Now),
		Unidad:     unidades,
		Planeacion: NewPlaneacionService(repo, logger, time.Now),
	}
}

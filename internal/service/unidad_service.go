package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"planeacion/backend/internal/dto"
	"planeacion/backend/internal/model"
	"planeacion/backend/internal/repository"
	apperrors "planeacion/backend/pkg/errors"
)

// ── unidad errors ──

var (
	ErrUnidadNotFound    = apperrors.New(apperrors.KindNotFound, 13001, "Unidad académica no encontrada")
	ErrUnidadNameTaken   = apperrors.New(apperrors.KindConflict, 13002, "Ya existe una unidad académica con ese nombre")
	ErrUnidadHasUsuarios = apperrors.New(apperrors.KindConflict, 13003, "La unidad académica tiene usuarios asignados")
)

// UnidadService academic unit catalogue
type UnidadService interface {
	List(ctx context.Context, req *dto.UnidadListRequest) ([]dto.UnidadResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.UnidadResponse, error)
	Create(ctx context.Context, req *dto.CreateUnidadRequest) (*dto.UnidadResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUnidadRequest) (*dto.UnidadResponse, error)
	Delete(ctx context.Context, id int64) error
	// Exists reports whether a unit with id is present.
	Exists(ctx context.Context, id int64) (bool, error)
}

type unidadService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUnidadService creates a UnidadService.
func NewUnidadService(repo *repository.Repository, logger *zap.Logger) UnidadService {
	return &unidadService{repo: repo, logger: logger}
}

func (s *unidadService) List(ctx context.Context, req *dto.UnidadListRequest) ([]dto.UnidadResponse, error) {
	unidades, err := s.repo.Unidad.List(ctx, req.Q, req.GetSkip(), req.GetLimit())
	if err != nil {
		s.logger.Error("list unidades failed", zap.Error(err))
		return nil, err
	}

	list := make([]dto.UnidadResponse, 0, len(unidades))
	for i := range unidades {
		list = append(list, toUnidadResponse(&unidades[i]))
	}
	return list, nil
}

func (s *unidadService) GetByID(ctx context.Context, id int64) (*dto.UnidadResponse, error) {
	unidad, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUnidadResponse(unidad)
	return &resp, nil
}

func (s *unidadService) Create(ctx context.Context, req *dto.CreateUnidadRequest) (*dto.UnidadResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if err := s.ensureNameFree(ctx, nombre, 0); err != nil {
		return nil, err
	}

	unidad := &model.UnidadAcademica{
		Nombre:      nombre,
		Abreviatura: trimToNil(req.Abreviatura),
	}
	if err := s.repo.Unidad.Create(ctx, unidad); err != nil {
		s.logger.Error("create unidad failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("unidad created", zap.Int64("unidad_id", unidad.ID), zap.String("nombre", unidad.Nombre))
	resp := toUnidadResponse(unidad)
	return &resp, nil
}

func (s *unidadService) Update(ctx context.Context, id int64, req *dto.UpdateUnidadRequest) (*dto.UnidadResponse, error) {
	unidad, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre != unidad.Nombre {
			if err := s.ensureNameFree(ctx, nombre, id); err != nil {
				return nil, err
			}
		}
		unidad.Nombre = nombre
	}
	if req.Abreviatura != nil {
		unidad.Abreviatura = trimToNil(req.Abreviatura)
	}

	if err := s.repo.Unidad.Update(ctx, unidad); err != nil {
		s.logger.Error("update unidad failed", zap.Int64("unidad_id", id), zap.Error(err))
		return nil, err
	}

	resp := toUnidadResponse(unidad)
	return &resp, nil
}

func (s *unidadService) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.Unidad.CountUsuarios(ctx, id)
	if err != nil {
		s.logger.Error("count usuarios failed", zap.Int64("unidad_id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrUnidadHasUsuarios
	}

	n, err := s.repo.Unidad.Delete(ctx, id)
	if err != nil {
		// A user may have been attached between the count and the delete.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrUnidadHasUsuarios
		}
		s.logger.Error("delete unidad failed", zap.Int64("unidad_id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrUnidadNotFound
	}

	s.logger.Info("unidad deleted", zap.Int64("unidad_id", id))
	return nil
}

func (s *unidadService) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUnidadNotFound):
		return false, nil
	default:
		return false, err
	}
}

// ── helpers ──

func (s *unidadService) get(ctx context.Context, id int64) (*model.UnidadAcademica, error) {
	unidad, err := s.repo.Unidad.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnidadNotFound
		}
		s.logger.Error("get unidad failed", zap.Int64("unidad_id", id), zap.Error(err))
		return nil, err
	}
	return unidad, nil
}

// ensureNameFree fails when another unit (other than selfID) owns nombre.
// The schema has no unique index on nombre; this check is the only guard.
func (s *unidadService) ensureNameFree(ctx context.Context, nombre string, selfID int64) error {
	existing, err := s.repo.Unidad.GetByName(ctx, nombre)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return ErrUnidadNameTaken
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		s.logger.Error("lookup unidad by name failed", zap.Error(err))
		return err
	}
}

func trimToNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toUnidadResponse(u *model.UnidadAcademica) dto.UnidadResponse {
	return dto.UnidadResponse{
		ID:          u.ID,
		Nombre:      u.Nombre,
		Abreviatura: u.Abreviatura,
	}
}

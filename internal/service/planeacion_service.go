package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"planeacion/backend/internal/dto"
	"planeacion/backend/internal/model"
	"planeacion/backend/internal/repository"
	apperrors "planeacion/backend/pkg/errors"
)

// ErrPlaneacionNotFound also covers plans owned by someone else.
var ErrPlaneacionNotFound = apperrors.New(apperrors.KindNotFound, 14001, "Planeación no encontrada")

const defaultNombrePlaneacion = "Planeación sin título"

// PlaneacionService lesson plans, always scoped to the calling docente.
type PlaneacionService interface {
	List(ctx context.Context, owner *model.Usuario) ([]dto.PlaneacionResponse, error)
	Get(ctx context.Context, owner *model.Usuario, id int64) (*dto.PlaneacionResponse, error)
	Create(ctx context.Context, owner *model.Usuario, req *dto.CreatePlaneacionRequest) (*dto.PlaneacionResponse, error)
	Update(ctx context.Context, owner *model.Usuario, id int64, req *dto.UpdatePlaneacionRequest) (*dto.PlaneacionResponse, error)
	Delete(ctx context.Context, owner *model.Usuario, id int64) error
	// GetDatosGenerales returns an empty view when nothing was saved yet.
	GetDatosGenerales(ctx context.Context, owner *model.Usuario, id int64) (*dto.DatosGeneralesResponse, error)
	SaveDatosGenerales(ctx context.Context, owner *model.Usuario, id int64, req *dto.DatosGeneralesRequest) (*dto.DatosGeneralesResponse, error)
}

type planeacionService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewPlaneacionService creates a PlaneacionService.
func NewPlaneacionService(repo *repository.Repository, logger *zap.Logger, now func() time.Time) PlaneacionService {
	return &planeacionService{repo: repo, logger: logger, now: now}
}

func (s *planeacionService) List(ctx context.Context, owner *model.Usuario) ([]dto.PlaneacionResponse, error) {
	plans, err := s.repo.Planeacion.ListByOwner(ctx, owner.ID)
	if err != nil {
		s.logger.Error("list planeaciones failed", zap.Int64("user_id", owner.ID), zap.Error(err))
		return nil, err
	}

	list := make([]dto.PlaneacionResponse, 0, len(plans))
	for i := range plans {
		list = append(list, toPlaneacionResponse(&plans[i]))
	}
	return list, nil
}

func (s *planeacionService) Get(ctx context.Context, owner *model.Usuario, id int64) (*dto.PlaneacionResponse, error) {
	p, err := s.get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	resp := toPlaneacionResponse(p)
	return &resp, nil
}

func (s *planeacionService) Create(ctx context.Context, owner *model.Usuario, req *dto.CreatePlaneacionRequest) (*dto.PlaneacionResponse, error) {
	nombre := strings.TrimSpace(req.NombrePlaneacion)
	if nombre == "" {
		nombre = defaultNombrePlaneacion
	}

	p := &model.Planeacion{
		DocenteID:         owner.ID,
		UnidadAcademicaID: owner.UnidadID,
		NombrePlaneacion:  nombre,
		Asignatura:        req.Asignatura,
		Periodo:           req.Periodo,
		Grupo:             req.Grupo,
		Status:            model.PlaneacionBorrador,
	}
	if err := s.repo.Planeacion.Create(ctx, p); err != nil {
		s.logger.Error("create planeacion failed", zap.Int64("user_id", owner.ID), zap.Error(err))
		return nil, err
	}

	resp := toPlaneacionResponse(p)
	return &resp, nil
}

func (s *planeacionService) Update(ctx context.Context, owner *model.Usuario, id int64, req *dto.UpdatePlaneacionRequest) (*dto.PlaneacionResponse, error) {
	p, err := s.get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if req.NombrePlaneacion != nil {
		p.NombrePlaneacion = strings.TrimSpace(*req.NombrePlaneacion)
	}
	if req.Asignatura != nil {
		p.Asignatura = req.Asignatura
	}
	if req.Periodo != nil {
		p.Periodo = req.Periodo
	}
	if req.Grupo != nil {
		p.Grupo = req.Grupo
	}
	if req.Status != nil {
		status := model.PlaneacionStatus(*req.Status)
		switch {
		case status == model.PlaneacionFinalizada && p.Status != model.PlaneacionFinalizada:
			at := s.now()
			p.FinalizadaAt = &at
		case status == model.PlaneacionBorrador:
			p.FinalizadaAt = nil
		}
		p.Status = status
	}

	if err := s.repo.Planeacion.Update(ctx, p); err != nil {
		s.logger.Error("update planeacion failed", zap.Int64("planeacion_id", id), zap.Error(err))
		return nil, err
	}

	resp := toPlaneacionResponse(p)
	return &resp, nil
}

func (s *planeacionService) Delete(ctx context.Context, owner *model.Usuario, id int64) error {
	n, err := s.repo.Planeacion.DeleteForOwner(ctx, id, owner.ID)
	if err != nil {
		s.logger.Error("delete planeacion failed", zap.Int64("planeacion_id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrPlaneacionNotFound
	}
	return nil
}

func (s *planeacionService) GetDatosGenerales(ctx context.Context, owner *model.Usuario, id int64) (*dto.DatosGeneralesResponse, error) {
	if _, err := s.get(ctx, owner, id); err != nil {
		return nil, err
	}

	d, err := s.repo.DatosGenerales.GetByPlaneacion(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.DatosGeneralesResponse{PlaneacionID: id}, nil
	}
	if err != nil {
		s.logger.Error("get datos generales failed", zap.Int64("planeacion_id", id), zap.Error(err))
		return nil, err
	}

	resp := toDatosGeneralesResponse(d)
	return &resp, nil
}

func (s *planeacionService) SaveDatosGenerales(ctx context.Context, owner *model.Usuario, id int64, req *dto.DatosGeneralesRequest) (*dto.DatosGeneralesResponse, error) {
	if _, err := s.get(ctx, owner, id); err != nil {
		return nil, err
	}

	d := &model.PlaneacionDatosGenerales{
		PlaneacionID:    id,
		Asignatura:      trimToNil(req.Asignatura),
		Periodo:         trimToNil(req.Periodo),
		Grupo:           trimToNil(req.Grupo),
		Proposito:       trimToNil(req.Proposito),
		Metodologia:     trimToNil(req.Metodologia),
		Consideraciones: trimToNil(req.Consideraciones),
	}
	if err := s.repo.DatosGenerales.Upsert(ctx, d); err != nil {
		// the plan was deleted between the ownership check and the write
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrPlaneacionNotFound
		}
		s.logger.Error("save datos generales failed", zap.Int64("planeacion_id", id), zap.Error(err))
		return nil, err
	}

	saved, err := s.repo.DatosGenerales.GetByPlaneacion(ctx, id)
	if err != nil {
		s.logger.Error("reload datos generales failed", zap.Int64("planeacion_id", id), zap.Error(err))
		return nil, err
	}

	resp := toDatosGeneralesResponse(saved)
	return &resp, nil
}

func (s *planeacionService) get(ctx context.Context, owner *model.Usuario, id int64) (*model.Planeacion, error) {
	p, err := s.repo.Planeacion.GetForOwner(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaneacionNotFound
		}
		s.logger.Error("get planeacion failed", zap.Int64("planeacion_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func toPlaneacionResponse(p *model.Planeacion) dto.PlaneacionResponse {
	return dto.PlaneacionResponse{
		ID:                p.ID,
		DocenteID:         p.DocenteID,
		UnidadAcademicaID: p.UnidadAcademicaID,
		NombrePlaneacion:  p.NombrePlaneacion,
		Asignatura:        p.Asignatura,
		Periodo:           p.Periodo,
		Grupo:             p.Grupo,
		Status:            string(p.Status),
		FinalizadaAt:      p.FinalizadaAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toDatosGeneralesResponse(d *model.PlaneacionDatosGenerales) dto.DatosGeneralesResponse {
	id := d.ID
	updatedAt := d.UpdatedAt
	return dto.DatosGeneralesResponse{
		ID:              &id,
		PlaneacionID:    d.PlaneacionID,
		Asignatura:      d.Asignatura,
		Periodo:         d.Periodo,
		Grupo:           d.Grupo,
		Proposito:       d.Proposito,
		Metodologia:     d.Metodologia,
		Consideraciones: d.Consideraciones,
		UpdatedAt:       &updatedAt,
	}
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"planeacion/backend/internal/model"
)

// PlaneacionRepository lesson plan data access. Every read and write is
// scoped to the owning docente.
type PlaneacionRepository interface {
	Create(ctx context.Context, p *model.Planeacion) error
	GetForOwner(ctx context.Context, id, docenteID int64) (*model.Planeacion, error)
	ListByOwner(ctx context.Context, docenteID int64) ([]model.Planeacion, error)
	Update(ctx context.Context, p *model.Planeacion) error
	DeleteForOwner(ctx context.Context, id, docenteID int64) (int64, error)
}

type planeacionRepo struct {
	db *gorm.DB
}

// NewPlaneacionRepo creates a gorm-backed PlaneacionRepository.
func NewPlaneacionRepo(db *gorm.DB) PlaneacionRepository {
	return &planeacionRepo{db: db}
}

func (r *planeacionRepo) Create(ctx context.Context, p *model.Planeacion) error {
	return r.db.WithContext(ctx).Omit("Docente", "Unidad").Create(p).Error
}

func (r *planeacionRepo) GetForOwner(ctx context.Context, id, docenteID int64) (*model.Planeacion, error) {
	var p model.Planeacion
	err := r.db.WithContext(ctx).
		Where("id = ? AND docente_id = ?", id, docenteID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planeacionRepo) ListByOwner(ctx context.Context, docenteID int64) ([]model.Planeacion, error) {
	list := make([]model.Planeacion, 0)
	err := r.db.WithContext(ctx).
		Where("docente_id = ?", docenteID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *planeacionRepo) Update(ctx context.Context, p *model.Planeacion) error {
	return r.db.WithContext(ctx).Omit("Docente", "Unidad").Save(p).Error
}

func (r *planeacionRepo) DeleteForOwner(ctx context.Context, id, docenteID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND docente_id = ?", id, docenteID).
		Delete(&model.Planeacion{})
	return res.RowsAffected, res.Error
}

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"planeacion/backend/internal/model"
)

// UnidadRepository academic unit data access
type UnidadRepository interface {
	Create(ctx context.Context, unidad *model.UnidadAcademica) error
	GetByID(ctx context.Context, id int64) (*model.UnidadAcademica, error)
	GetByName(ctx context.Context, nombre string) (*model.UnidadAcademica, error)
	// List filters by a case-insensitive substring of nombre or abreviatura.
	List(ctx context.Context, q string, offset, limit int) ([]model.UnidadAcademica, error)
	Update(ctx context.Context, unidad *model.UnidadAcademica) error
	// Delete returns the number of rows removed.
	Delete(ctx context.Context, id int64) (int64, error)
	CountUsuarios(ctx context.Context, id int64) (int64, error)
}

type unidadRepo struct {
	db *gorm.DB
}

// NewUnidadRepo creates a gorm-backed UnidadRepository.
func NewUnidadRepo(db *gorm.DB) UnidadRepository {
	return &unidadRepo{db: db}
}

func (r *unidadRepo) Create(ctx context.Context, unidad *model.UnidadAcademica) error {
	return r.db.WithContext(ctx).Create(unidad).Error
}

func (r *unidadRepo) GetByID(ctx context.Context, id int64) (*model.UnidadAcademica, error) {
	var unidad model.UnidadAcademica
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&unidad).Error
	if err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *unidadRepo) GetByName(ctx context.Context, nombre string) (*model.UnidadAcademica, error) {
	var unidad model.UnidadAcademica
	err := r.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		First(&unidad).Error
	if err != nil {
		return nil, err
	}
	return &unidad, nil
}

func (r *unidadRepo) List(ctx context.Context, q string, offset, limit int) ([]model.UnidadAcademica, error) {
	db := r.db.WithContext(ctx).Model(&model.UnidadAcademica{})

	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(nombre) LIKE ? OR LOWER(COALESCE(abreviatura, '')) LIKE ?", like, like)
	}

	unidades := make([]model.UnidadAcademica, 0)
	err := db.Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&unidades).Error
	return unidades, err
}

func (r *unidadRepo) Update(ctx context.Context, unidad *model.UnidadAcademica) error {
	return r.db.WithContext(ctx).Save(unidad).Error
}

func (r *unidadRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.UnidadAcademica{}, id)
	return res.RowsAffected, res.Error
}

func (r *unidadRepo) CountUsuarios(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where("unidad_id = ?", id).
		Count(&count).Error
	return count, err
}

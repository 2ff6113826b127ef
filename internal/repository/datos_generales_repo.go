package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"planeacion/backend/internal/model"
)

// DatosGeneralesRepository general data of a lesson plan, keyed by plan id.
// Callers check plan ownership first.
type DatosGeneralesRepository interface {
	GetByPlaneacion(ctx context.Context, planeacionID int64) (*model.PlaneacionDatosGenerales, error)
	// Upsert inserts the row or replaces every data column of the existing one.
	Upsert(ctx context.Context, d *model.PlaneacionDatosGenerales) error
}

// datosGeneralesColumns are overwritten on conflict; created_at is kept.
var datosGeneralesColumns = []string{
	"asignatura", "periodo", "grupo", "proposito", "metodologia", "consideraciones", "updated_at",
}

type datosGeneralesRepo struct {
	db *gorm.DB
}

// NewDatosGeneralesRepo creates a gorm-backed DatosGeneralesRepository.
func NewDatosGeneralesRepo(db *gorm.DB) DatosGeneralesRepository {
	return &datosGeneralesRepo{db: db}
}

func (r *datosGeneralesRepo) GetByPlaneacion(ctx context.Context, planeacionID int64) (*model.PlaneacionDatosGenerales, error) {
	var d model.PlaneacionDatosGenerales
	err := r.db.WithContext(ctx).
		Where("planeacion_id = ?", planeacionID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *datosGeneralesRepo) Upsert(ctx context.Context, d *model.PlaneacionDatosGenerales) error {
	return r.db.WithContext(ctx).
		Omit("Planeacion").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "planeacion_id"}},
			DoUpdates: clause.AssignmentColumns(datosGeneralesColumns),
		}).
		Create(d).Error
}

package repository

import "gorm.io/gorm"

// Repository bundles every repository behind one handle.
type Repository struct {
	Usuario        UsuarioRepository
	Unidad         UnidadRepository
	Planeacion     PlaneacionRepository
	DatosGenerales DatosGeneralesRepository
}

// NewRepository creates the Repository bundle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Usuario:        NewUsuarioRepo(db),
		Unidad:         NewUnidadRepo(db),
		Planeacion:     NewPlaneacionRepo(db),
		DatosGenerales: NewDatosGeneralesRepo(db),
	}
}

package dto

import "time"

// ── lesson plans ──

// CreatePlaneacionRequest create a plan; a blank name gets a placeholder.
type CreatePlaneacionRequest struct {
	NombrePlaneacion string  `json:"nombre_planeacion" binding:"max=255"`
	Asignatura       *string `json:"asignatura"        binding:"omitempty,max=255"`
	Periodo          *string `json:"periodo"           binding:"omitempty,max=50"`
	Grupo            *string `json:"grupo"             binding:"omitempty,max=50"`
}

// UpdatePlaneacionRequest partial update
type UpdatePlaneacionRequest struct {
	NombrePlaneacion *string `json:"nombre_planeacion" binding:"omitempty,notblank,max=255"`
	Asignatura       *string `json:"asignatura"        binding:"omitempty,max=255"`
	Periodo          *string `json:"periodo"           binding:"omitempty,max=50"`
	Grupo            *string `json:"grupo"             binding:"omitempty,max=50"`
	Status           *string `json:"status"            binding:"omitempty,oneof=borrador finalizada"`
}

// PlaneacionResponse plan view
type PlaneacionResponse struct {
	ID                int64      `json:"id"`
	DocenteID         int64      `json:"docente_id"`
	UnidadAcademicaID int64      `json:"unidad_academica_id"`
	NombrePlaneacion  string     `json:"nombre_planeacion"`
	Asignatura        *string    `json:"asignatura"`
	Periodo           *string    `json:"periodo"`
	Grupo             *string    `json:"grupo"`
	Status            string     `json:"status"`
	FinalizadaAt      *time.Time `json:"finalizada_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ── general data ──

// DatosGeneralesRequest replaces the general data of a plan; omitted or
// blank fields are cleared.
type DatosGeneralesRequest struct {
	Asignatura      *string `json:"asignatura"      binding:"omitempty,max=255"`
	Periodo         *string `json:"periodo"         binding:"omitempty,max=50"`
	Grupo           *string `json:"grupo"           binding:"omitempty,max=50"`
	Proposito       *string `json:"proposito"       binding:"omitempty,max=10000"`
	Metodologia     *string `json:"metodologia"     binding:"omitempty,max=10000"`
	Consideraciones *string `json:"consideraciones" binding:"omitempty,max=10000"`
}

// DatosGeneralesResponse general data view. ID is null until the first save.
type DatosGeneralesResponse struct {
	ID              *int64     `json:"id"`
	PlaneacionID    int64      `json:"planeacion_id"`
	Asignatura      *string    `json:"asignatura"`
	Periodo         *string    `json:"periodo"`
	Grupo           *string    `json:"grupo"`
	Proposito       *string    `json:"proposito"`
	Metodologia     *string    `json:"metodologia"`
	Consideraciones *string    `json:"consideraciones"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

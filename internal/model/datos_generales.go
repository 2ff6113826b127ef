package model

// PlaneacionDatosGenerales table planeacion_datos_generales: the general data
// section of a lesson plan, at most one row per plan.
type PlaneacionDatosGenerales struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"                           json:"id"`
	PlaneacionID    int64   `gorm:"not null;uniqueIndex:ux_datos_generales_planeacion" json:"planeacion_id"`
	Asignatura      *string `gorm:"type:text"                                          json:"asignatura"`
	Periodo         *string `gorm:"type:text"                                          json:"periodo"`
	Grupo           *string `gorm:"type:text"                                          json:"grupo"`
	Proposito       *string `gorm:"type:text"                                          json:"proposito"`
	Metodologia     *string `gorm:"type:text"                                          json:"metodologia"`
	Consideraciones *string `gorm:"type:text"                                          json:"consideraciones"`
	Timestamps

	Planeacion *Planeacion `gorm:"foreignKey:PlaneacionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName table name
func (PlaneacionDatosGenerales) TableName() string { return "planeacion_datos_generales" }

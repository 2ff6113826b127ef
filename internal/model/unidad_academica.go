package model

// UnidadAcademica table unidades_academicas
type UnidadAcademica struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Nombre      string  `gorm:"type:varchar(255);not null" json:"nombre"`
	Abreviatura *string `gorm:"type:varchar(50)"          json:"abreviatura"`
}

// TableName table name
func (UnidadAcademica) TableName() string { return "unidades_academicas" }

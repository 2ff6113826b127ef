package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// PlaneacionStatus lifecycle of a lesson plan
type PlaneacionStatus string

const (
	PlaneacionBorrador   PlaneacionStatus = "borrador"
	PlaneacionFinalizada PlaneacionStatus = "finalizada"
)

// Valid reports whether s is a declared status.
func (s PlaneacionStatus) Valid() bool {
	return s == PlaneacionBorrador || s == PlaneacionFinalizada
}

// Scan implements sql.Scanner.
func (s *PlaneacionStatus) Scan(src interface{}) error {
	v, err := scanEnum(src, "PlaneacionStatus")
	if err != nil {
		return err
	}
	st := PlaneacionStatus(v)
	if !st.Valid() {
		return fmt.Errorf("PlaneacionStatus.Scan: unknown status %q", v)
	}
	*s = st
	return nil
}

// Value implements driver.Valuer.
func (s PlaneacionStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("PlaneacionStatus.Value: unknown status %q", string(s))
	}
	return string(s), nil
}

// Planeacion table planeaciones: a lesson plan owned by one docente.
type Planeacion struct {
	ID                int64            `gorm:"primaryKey;autoIncrement"                     json:"id"`
	DocenteID         int64            `gorm:"not null;index"                               json:"docente_id"`
	UnidadAcademicaID int64            `gorm:"not null"                                     json:"unidad_academica_id"`
	NombrePlaneacion  string           `gorm:"type:varchar(255);not null"                   json:"nombre_planeacion"`
	Asignatura        *string          `gorm:"type:text"                                    json:"asignatura"`
	Periodo           *string          `gorm:"type:text"                                    json:"periodo"`
	Grupo             *string          `gorm:"type:text"                                    json:"grupo"`
	Status            PlaneacionStatus `gorm:"type:planeacion_status;not null;default:'borrador'" json:"status"`
	FinalizadaAt      *time.Time       `json:"finalizada_at"`
	Timestamps

	Docente *Usuario         `gorm:"foreignKey:DocenteID;constraint:OnDelete:CASCADE"          json:"-"`
	Unidad  *UnidadAcademica `gorm:"foreignKey:UnidadAcademicaID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName table name
func (Planeacion) TableName() string { return "planeaciones" }

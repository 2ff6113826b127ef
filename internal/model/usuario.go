package model

import (
	"database/sql/driver"
	"fmt"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProfesor Role = "profesor"
)

// ParseRole converts s into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleProfesor
}

func (r Role) String() string { return string(r) }

// Scan implements sql.Scanner.
func (r *Role) Scan(src interface{}) error {
	s, err := scanEnum(src, "Role")
	if err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return fmt.Errorf("Role.Scan: %w", err)
	}
	*r = parsed
	return nil
}

// Value implements driver.Valuer. Invalid roles never reach the database.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("Role.Value: unknown role %q", string(r))
	}
	return string(r), nil
}

// Usuario table usuarios
type Usuario struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"                             json:"id"`
	UnidadID       int64  `gorm:"not null;index"                                       json:"unidad_id"`
	NombreCompleto string `gorm:"type:varchar(255);not null"                           json:"nombre_completo"`
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex:ux_usuarios_email" json:"email"`
	PasswordHash   string `gorm:"type:text;not null"                                   json:"-"`
	Role           Role   `gorm:"type:user_role;not null;default:'profesor'"           json:"role"`
	IsActive       bool   `gorm:"not null;default:true"                                json:"is_active"`
	Timestamps

	Unidad *UnidadAcademica `gorm:"foreignKey:UnidadID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// TableName table name
func (Usuario) TableName() string { return "usuarios" }

package model

import (
	"fmt"
	"time"
)

// Timestamps server-assigned audit columns
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// scanEnum reads a PostgreSQL enum column, which drivers hand back as
// string or []byte.
func scanEnum(src interface{}, name string) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("%s.Scan: NULL is not allowed", name)
	default:
		return "", fmt.Errorf("%s.Scan: unsupported type %T", name, src)
	}
}

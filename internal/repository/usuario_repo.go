package repository

import (
	"context"

	"gorm.io/gorm"

	"planeacion/backend/internal/model"
)

// UsuarioRepository is the credential store. Emails are stored normalised;
// callers pass normalised values.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	GetByID(ctx context.Context, id int64) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo creates a gorm-backed UsuarioRepository.
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Omit("Unidad").Create(usuario).Error
}

func (r *usuarioRepo) GetByID(ctx context.Context, id int64) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Usuario{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

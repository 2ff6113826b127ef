package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"planeacion/backend/internal/dto"
	"planeacion/backend/internal/model"
	"planeacion/backend/internal/repository"
	apperrors "planeacion/backend/pkg/errors"
	"planeacion/backend/pkg/jwt"
	"planeacion/backend/pkg/password"
	"planeacion/backend/pkg/validate"
)

// ── auth errors ──

var (
	ErrEmailMismatch      = apperrors.New(apperrors.KindValidation, 12001, "Los correos no coinciden")
	ErrInvalidEmail       = apperrors.New(apperrors.KindValidation, 12002, "Email inválido")
	ErrPasswordMismatch   = apperrors.New(apperrors.KindValidation, 12003, "Las contraseñas no coinciden")
	ErrUnidadInvalida     = apperrors.New(apperrors.KindInvalidReference, 12004, "Unidad académica inválida")
	ErrEmailTaken         = apperrors.New(apperrors.KindConflict, 12005, "El email ya está registrado")
	ErrPasswordTooLong    = apperrors.New(apperrors.KindValidation, 12006, "La contraseña excede 72 bytes")
	ErrInvalidCredentials = apperrors.New(apperrors.KindUnauthorized, 11001, "Credenciales inválidas")
	ErrUserInactive       = apperrors.New(apperrors.KindForbidden, 11002, "Usuario inactivo")
	ErrUnauthenticated    = apperrors.New(apperrors.KindUnauthorized, 10002, "Token inválido o expirado")
)

const tokenTypeBearer = "bearer"

// AuthService registration, login and request authentication.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// Authenticate resolves a bearer token to the current, active user.
	// The user is always re-read so deactivation applies on the next request.
	Authenticate(ctx context.Context, token string) (*model.Usuario, error)
}

type authService struct {
	repo     *repository.Repository
	unidades UnidadService
	tokens   *jwt.Manager
	hasher   *password.Hasher
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuthService creates an AuthService. now is the clock used for token
// issuance and expiry checks.
func NewAuthService(
	repo *repository.Repository,
	unidades UnidadService,
	tokens *jwt.Manager,
	hasher *password.Hasher,
	logger *zap.Logger,
	now func() time.Time,
) AuthService {
	return &authService{
		repo:     repo,
		unidades: unidades,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
		now:      now,
	}
}

// NormalizeEmail lower-cases and trims an address; the credential store only
// ever sees normalised emails.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := NormalizeEmail(req.Email)
	if email != NormalizeEmail(req.Email2) {
		return nil, ErrEmailMismatch
	}
	if !validate.Email(email) {
		return nil, ErrInvalidEmail
	}
	if req.Password != req.Password2 {
		return nil, ErrPasswordMismatch
	}
	// the binding rule counts characters; bcrypt counts bytes
	if len(req.Password) > password.MaxBytes {
		return nil, ErrPasswordTooLong
	}

	ok, err := s.unidades.Exists(ctx, req.UnidadID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnidadInvalida
	}

	exists, err := s.repo.Usuario.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("lookup email failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	usuario := &model.Usuario{
		UnidadID:       req.UnidadID,
		NombreCompleto: strings.TrimSpace(req.Nombre),
		Email:          email,
		PasswordHash:   hash,
		Role:           model.RoleProfesor,
		IsActive:       true,
	}

	if err := s.repo.Usuario.Create(ctx, usuario); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrEmailTaken
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, ErrUnidadInvalida
		}
		s.logger.Error("create usuario failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("usuario registered", zap.Int64("user_id", usuario.ID), zap.Int64("unidad_id", usuario.UnidadID))

	resp := toUserResponse(usuario)
	return &resp, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials.WithDiag("unknown_email")
		}
		s.logger.Error("lookup usuario failed", zap.Error(err))
		return nil, err
	}

	if !s.hasher.Verify(req.Password, usuario.PasswordHash) {
		return nil, ErrInvalidCredentials.WithDiag("bad_password")
	}

	// Only a caller holding the right password learns the account is inactive.
	if !usuario.IsActive {
		return nil, ErrUserInactive
	}

	token, err := s.tokens.Issue(usuario.ID, usuario.Role.String(), s.now())
	if err != nil {
		s.logger.Error("issue token failed", zap.Error(err))
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
		User:        toUserResponse(usuario),
	}, nil
}

// ────────────────────── Authenticate ──────────────────────

func (s *authService) Authenticate(ctx context.Context, token string) (*model.Usuario, error) {
	if token == "" {
		return nil, ErrUnauthenticated.WithDiag("missing")
	}

	claims, diag, err := s.tokens.Verify(token, s.now())
	if err != nil {
		s.logger.Debug("token rejected", zap.String("reason", diag))
		return nil, ErrUnauthenticated.WithDiag(diag)
	}

	id, _ := claims.SubjectID()
	usuario, err := s.repo.Usuario.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated.WithDiag("unknown_subject")
		}
		s.logger.Error("lookup usuario failed", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}
	if !usuario.IsActive {
		return nil, ErrUnauthenticated.WithDiag("inactive")
	}

	return usuario, nil
}

func toUserResponse(u *model.Usuario) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		UnidadID:       u.UnidadID,
		Role:           u.Role.String(),
	}
}

// ToUserResponse exposes the public view for handlers that already hold a
// user, e.g. GET /me.
func ToUserResponse(u *model.Usuario) dto.UserResponse {
	return toUserResponse(u)
}

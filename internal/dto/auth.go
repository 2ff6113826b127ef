package dto

// ── auth ──

// RegisterRequest self-registration. There is deliberately no role field:
// self-registered accounts are always profesor.
type RegisterRequest struct {
	Nombre    string `json:"nombre"    binding:"required,notblank,min=3,max=255"`
	Email     string `json:"email"     binding:"required,max=255"`
	Email2    string `json:"email2"    binding:"required,max=255"`
	Password  string `json:"password"  binding:"required,min=8,max=72"`
	Password2 string `json:"password2" binding:"required,min=8,max=72"`
	UnidadID  int64  `json:"unidad_id" binding:"required,gt=0"`
}

// LoginRequest email/password login
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// AuthResponse login result
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

// UserResponse public user view; never carries the password hash.
type UserResponse struct {
	ID             int64  `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	UnidadID       int64  `json:"unidad_id"`
	Role           string `json:"role"`
}

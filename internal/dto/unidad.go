package dto

// ── academic units ──

// CreateUnidadRequest create a unit
type CreateUnidadRequest struct {
	Nombre      string  `json:"nombre"      binding:"required,notblank,min=3,max=255"`
	Abreviatura *string `json:"abreviatura" binding:"omitempty,max=50"`
}

// UpdateUnidadRequest partial update; nil fields are left unchanged.
type UpdateUnidadRequest struct {
	Nombre      *string `json:"nombre"      binding:"omitempty,notblank,min=3,max=255"`
	Abreviatura *string `json:"abreviatura" binding:"omitempty,max=50"`
}

// UnidadListRequest list query
type UnidadListRequest struct {
	Q string `form:"q" binding:"omitempty,max=255"`
	PaginationRequest
}

// UnidadResponse unit view
type UnidadResponse struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Abreviatura *string `json:"abreviatura"`
}

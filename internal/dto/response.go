package dto

// PaginationRequest skip/limit paging
type PaginationRequest struct {
	Skip  *int `form:"skip"  binding:"omitempty,min=0"`
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

const defaultLimit = 20

// GetSkip returns skip, defaulting to 0.
func (p *PaginationRequest) GetSkip() int {
	if p.Skip == nil {
		return 0
	}
	return *p.Skip
}

// GetLimit returns limit, defaulting to 20.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit == nil {
		return defaultLimit
	}
	return *p.Limit
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planeacion/backend/internal/dto"
	"planeacion/backend/internal/service"
	"planeacion/backend/pkg/response"
)

// UnidadHandler academic unit CRUD
type UnidadHandler struct {
	unidadSvc service.UnidadService
	logger    *zap.Logger
}

// NewUnidadHandler creates a UnidadHandler.
func NewUnidadHandler(unidadSvc service.UnidadService, logger *zap.Logger) *UnidadHandler {
	return &UnidadHandler{unidadSvc: unidadSvc, logger: logger}
}

// List GET /unidades?q&skip&limit
func (h *UnidadHandler) List(c *gin.Context) {
	var req dto.UnidadListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.unidadSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, list)
}

// Get GET /unidades/:id
func (h *UnidadHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	unidad, err := h.unidadSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, unidad)
}

// Create POST /unidades
func (h *UnidadHandler) Create(c *gin.Context) {
	var req dto.CreateUnidadRequest
	if !bindJSON(c, &req) {
		return
	}

	unidad, err := h.unidadSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Created(c, unidad)
}

// Update PATCH /unidades/:id
func (h *UnidadHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUnidadRequest
	if !bindJSON(c, &req) {
		return
	}

	unidad, err := h.unidadSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, unidad)
}

// Delete DELETE /unidades/:id
func (h *UnidadHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.unidadSvc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.NoContent(c)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planeacion/backend/internal/dto"
	"planeacion/backend/internal/service"
	"planeacion/backend/pkg/response"
)

// PlaneacionHandler lesson plans of the current user
type PlaneacionHandler struct {
	planSvc service.PlaneacionService
	logger  *zap.Logger
}

// NewPlaneacionHandler creates a PlaneacionHandler.
func NewPlaneacionHandler(planSvc service.PlaneacionService, logger *zap.Logger) *PlaneacionHandler {
	return &PlaneacionHandler{planSvc: planSvc, logger: logger}
}

// List GET /planeaciones
func (h *PlaneacionHandler) List(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}

	list, err := h.planSvc.List(c.Request.Context(), user)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, list)
}

// Get GET /planeaciones/:id
func (h *PlaneacionHandler) Get(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.planSvc.Get(c.Request.Context(), user, id)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, plan)
}

// Create POST /planeaciones
func (h *PlaneacionHandler) Create(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreatePlaneacionRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planSvc.Create(c.Request.Context(), user, &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Created(c, plan)
}

// Update PUT /planeaciones/:id
func (h *PlaneacionHandler) Update(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePlaneacionRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.planSvc.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, plan)
}

// Delete DELETE /planeaciones/:id
func (h *PlaneacionHandler) Delete(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.planSvc.Delete(c.Request.Context(), user, id); err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.NoContent(c)
}

// GetDatosGenerales GET /planeaciones/:id/datos-generales
func (h *PlaneacionHandler) GetDatosGenerales(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	datos, err := h.planSvc.GetDatosGenerales(c.Request.Context(), user, id)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, datos)
}

// UpdateDatosGenerales PUT /planeaciones/:id/datos-generales
func (h *PlaneacionHandler) UpdateDatosGenerales(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DatosGeneralesRequest
	if !bindJSON(c, &req) {
		return
	}

	datos, err := h.planSvc.SaveDatosGenerales(c.Request.Context(), user, id, &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, datos)
}

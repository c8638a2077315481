package handler

import (
	"net/http"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/service"
	"anoa.com/noorautomobiles/pkg/apperror"
	"anoa.com/noorautomobiles/pkg/response"
	"anoa.com/noorautomobiles/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PartHandler struct {
	service service.PartService
}

func NewPartHandler(service service.PartService) *PartHandler {
	return &PartHandler{service: service}
}

func (h *PartHandler) GetAllParts(c *gin.Context) {
	var filter dto.PartFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	parts, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

func (h *PartHandler) GetPartByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	part, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *PartHandler) CreatePart(c *gin.Context) {
	var req dto.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	part, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "part added successfully", "part": part})
}

func (h *PartHandler) UpdatePart(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.Validation("invalid request body"))
		return
	}

	part, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "part updated successfully", "part": part})
}

func (h *PartHandler) DeletePart(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "part deleted successfully"})
}

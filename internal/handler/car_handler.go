package handler

import (
	"net/http"
	"strconv"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/service"
	"anoa.com/noorautomobiles/pkg/apperror"
	"anoa.com/noorautomobiles/pkg/response"
	"anoa.com/noorautomobiles/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	service service.CarService
}

func NewCarHandler(service service.CarService) *CarHandler {
	return &CarHandler{service: service}
}

func (h *CarHandler) GetAllCars(c *gin.Context) {
	var filter dto.CarFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	cars, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, cars)
}

func (h *CarHandler) GetCarByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	car, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) GetBrands(c *gin.Context) {
	brands, err := h.service.Brands(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, brands)
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	car, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "car added successfully", "car": car})
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.Validation("invalid request body"))
		return
	}

	car, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "car updated successfully", "car": car})
}

func (h *CarHandler) ReorderCars(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	if err := h.service.Reorder(c.Request.Context(), req.Order); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "car order updated successfully"})
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "car deleted successfully"})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.Validation("invalid id")
	}
	return uint(id), nil
}

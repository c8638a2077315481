package handler

import (
	"fmt"
	"net/http"
	"time"

	"anoa.com/noorautomobiles/internal/dto"
	"anoa.com/noorautomobiles/internal/service"
	"anoa.com/noorautomobiles/pkg/apperror"
	"anoa.com/noorautomobiles/pkg/response"
	"anoa.com/noorautomobiles/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type InquiryHandler struct {
	service   service.InquiryService
	rdb       *redis.Client
	rateLimit time.Duration
}

func NewInquiryHandler(service service.InquiryService, rdb *redis.Client, rateLimit time.Duration) *InquiryHandler {
	return &InquiryHandler{
		service:   service,
		rdb:       rdb,
		rateLimit: rateLimit,
	}
}

// SubmitInquiry is the only public write endpoint, so repeated submissions
// from the same client are rate limited.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	allowed, err := service.CheckAndSetRateLimit(c.Request.Context(), h.rdb, c.ClientIP(), "inquiry", h.rateLimit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if !allowed {
		ttl, _ := service.GetRateLimitTTL(c.Request.Context(), h.rdb, c.ClientIP(), "inquiry")
		c.Header("Retry-After", fmt.Sprintf("%.0f", ttl.Seconds()))
		response.ResponseError(c, apperror.ErrRateLimitExceeded)
		return
	}

	inquiry, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "inquiry submitted successfully", "inquiry": inquiry})
}

func (h *InquiryHandler) GetAllInquiries(c *gin.Context) {
	var filter dto.InquiryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	inquiries, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

func (h *InquiryHandler) GetInquiryByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	inquiry, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, apperror.Validation(validator.FormatValidationError(err)))
		return
	}

	inquiry, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "inquiry status updated successfully", "inquiry": inquiry})
}

func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "inquiry deleted successfully"})
}

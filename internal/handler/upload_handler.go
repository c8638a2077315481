package handler

import (
	"net/http"

	"anoa.com/noorautomobiles/internal/service"
	"anoa.com/noorautomobiles/pkg/apperror"
	"anoa.com/noorautomobiles/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	maxCarUploadFiles  = 10
	maxPartUploadFiles = 5
)

type UploadHandler struct {
	service service.UploadService
}

func NewUploadHandler(service service.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

func (h *UploadHandler) UploadCarFiles(c *gin.Context) {
	h.upload(c, "cars", maxCarUploadFiles)
}

func (h *UploadHandler) UploadPartFiles(c *gin.Context) {
	h.upload(c, "parts", maxPartUploadFiles)
}

func (h *UploadHandler) upload(c *gin.Context, folder string, maxFiles int) {
	form, err := c.MultipartForm()
	if err != nil {
		response.ResponseError(c, apperror.Validation("no files uploaded"))
		return
	}

	files := form.File["files"]
	uploaded, err := h.service.UploadBatch(c.Request.Context(), folder, files, maxFiles)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "files uploaded successfully", "files": uploaded})
}

package handler

import (
	"net/http"

	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	maxSize       int64
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, maxSize int64) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		maxSize:       maxSize,
	}
}

// Upload handles an admin image upload
// @Summary Upload image
// @Description Upload a site image (doctor photo, facility picture, article cover)
// @Tags Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 413 {object} response.Response
// @Router /admin/uploads [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		response.Error(w, http.StatusRequestEntityTooLarge, "File exceeds the maximum upload size", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing file field", nil)
		return
	}
	defer file.Close()

	result, err := h.uploadUsecase.UploadImage(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		switch err {
		case usecase.ErrFileTooLarge:
			response.Error(w, http.StatusRequestEntityTooLarge, err.Error(), nil)
		case usecase.ErrUnsupportedFileType:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to upload file")
		}
		return
	}

	response.Success(w, http.StatusCreated, "File uploaded successfully", result)
}

package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/gorilla/mux"
)

type PageHandler struct {
	pageUsecase usecase.PageUsecase
	validator   *validator.CustomValidator
}

func NewPageHandler(pageUsecase usecase.PageUsecase, validator *validator.CustomValidator) *PageHandler {
	return &PageHandler{
		pageUsecase: pageUsecase,
		validator:   validator,
	}
}

// GetPage handles fetching a content block by slug
// @Summary Get page content
// @Tags Page
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /halaman/{slug} [get]
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.pageUsecase.GetPageBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		switch err {
		case usecase.ErrPageNotFound:
			response.NotFound(w, "Page not found")
		default:
			response.InternalServerError(w, "Failed to get page")
		}
		return
	}

	response.Success(w, http.StatusOK, "Page retrieved successfully", page)
}

// ListPages handles the admin page list
// @Summary List pages
// @Tags Page
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/halaman [get]
func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pageUsecase.ListPages(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pages")
		return
	}

	response.Success(w, http.StatusOK, "Pages retrieved successfully", pages)
}

// UpsertPage handles creating or replacing a content block
// @Summary Upsert page content
// @Tags Page
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slug path string true "Page slug"
// @Param request body dto.UpsertPageRequest true "Upsert Page Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/halaman/{slug} [put]
func (h *PageHandler) UpsertPage(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	page, err := h.pageUsecase.UpsertPage(r.Context(), mux.Vars(r)["slug"], &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save page")
		return
	}

	response.Success(w, http.StatusOK, "Page saved successfully", page)
}

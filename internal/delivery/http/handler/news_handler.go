package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NewsHandler struct {
	newsUsecase usecase.NewsUsecase
	validator   *validator.CustomValidator
}

func NewNewsHandler(newsUsecase usecase.NewsUsecase, validator *validator.CustomValidator) *NewsHandler {
	return &NewsHandler{
		newsUsecase: newsUsecase,
		validator:   validator,
	}
}

func searchNewsRequest(r *http.Request) *dto.SearchNewsRequest {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	return &dto.SearchNewsRequest{Page: page, Limit: limit}
}

// ListPublicNews handles the public article list
// @Summary List published news
// @Tags News
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /berita [get]
func (h *NewsHandler) ListPublicNews(w http.ResponseWriter, r *http.Request) {
	result, err := h.newsUsecase.ListPublishedNews(r.Context(), searchNewsRequest(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list news")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "News retrieved successfully", result.Items, result.Meta)
}

// GetPublicNews handles fetching a published article by slug
// @Summary Get news article by slug
// @Tags News
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /berita/{slug} [get]
func (h *NewsHandler) GetPublicNews(w http.ResponseWriter, r *http.Request) {
	article, err := h.newsUsecase.GetNewsBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "Article not found")
		default:
			response.InternalServerError(w, "Failed to get article")
		}
		return
	}

	response.Success(w, http.StatusOK, "Article retrieved successfully", article)
}

// ListNews handles the admin article list including drafts
// @Summary List all news
// @Tags News
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /admin/berita [get]
func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	result, err := h.newsUsecase.ListNews(r.Context(), searchNewsRequest(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list news")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "News retrieved successfully", result.Items, result.Meta)
}

// CreateNews handles article creation
// @Summary Create news article
// @Tags News
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNewsRequest true "Create News Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/berita [post]
func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	article, err := h.newsUsecase.CreateNews(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create article")
		return
	}

	response.Success(w, http.StatusCreated, "Article created successfully", article)
}

// UpdateNews handles a partial article update
// @Summary Update news article
// @Tags News
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body dto.UpdateNewsRequest true "Update News Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/berita/{id} [put]
func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid article ID", nil)
		return
	}

	var req dto.UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	article, err := h.newsUsecase.UpdateNews(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "Article not found")
		default:
			response.InternalServerError(w, "Failed to update article")
		}
		return
	}

	response.Success(w, http.StatusOK, "Article updated successfully", article)
}

// DeleteNews handles article deletion
// @Summary Delete news article
// @Tags News
// @Security BearerAuth
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/berita/{id} [delete]
func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid article ID", nil)
		return
	}

	if err := h.newsUsecase.DeleteNews(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrNewsNotFound:
			response.NotFound(w, "Article not found")
		default:
			response.InternalServerError(w, "Failed to delete article")
		}
		return
	}

	response.Success(w, http.StatusOK, "Article deleted successfully", nil)
}

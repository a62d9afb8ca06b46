package categories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/internal/service/categoryservice"
	"github.com/rewear/rewear-pos/pkg/utils"
)

//go:generate mockgen -source=categories.go -destination=mocks.go -package=categories Service
type Service interface {
	Enumerations() categoryservice.Enumerations
	ListCustom(ctx context.Context) ([]domain.CustomCategory, error)
	AddCustom(ctx context.Context, name, image string) (*domain.CustomCategory, error)
	UpdateImage(ctx context.Context, name, image string) error
	DeleteCustom(ctx context.Context, name string) error
}

type CategoryHandler struct {
	categoryService Service
}

func New(categoryService Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// GetEnumerations godoc
//
//	@Summary		Purchase form enumerations
//	@Description	Standard categories, price levels, conditions and relevance levels
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	dto.CategoriesResponseDTO
//	@Router			/api/categories [get]
func (h *CategoryHandler) GetEnumerations(w http.ResponseWriter, r *http.Request) {
	enums := h.categoryService.Enumerations()
	utils.RespondWithJSON(w, http.StatusOK, dto.CategoriesResponseDTO{
		Categories:      enums.Categories,
		PriceLevels:     enums.PriceLevels,
		Conditions:      enums.Conditions,
		RelevanceLevels: enums.RelevanceLevels,
	})
}

// ListCustom godoc
//
//	@Summary		List custom categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{array}		dto.CustomCategoryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/custom-categories [get]
func (h *CategoryHandler) ListCustom(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCustom(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.CustomCategoryDTO, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.CustomCategoryDTO{Name: c.Name, Image: c.Image})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AddCustom godoc
//
//	@Summary		Add a custom category
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CustomCategoryDTO	true	"Category request body"
//	@Success		201		{object}	dto.CustomCategoryDTO
//	@Failure		400		{object}	utils.Response	"Invalid name or image"
//	@Failure		409		{object}	utils.Response	"Category already exists"
//	@Security		BearerAuth
//	@Router			/api/custom-categories [post]
func (h *CategoryHandler) AddCustom(w http.ResponseWriter, r *http.Request) {
	var req dto.CustomCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category, err := h.categoryService.AddCustom(r.Context(), req.Name, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrCategoryExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, categoryservice.ErrEmptyName),
			errors.Is(err, categoryservice.ErrStandardCategory),
			errors.Is(err, categoryservice.ErrImageTooLarge):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CustomCategoryDTO{
		Name:  category.Name,
		Image: category.Image,
	})
}

// UpdateImage godoc
//
//	@Summary		Update a custom category image
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Param			name	path		string						true	"Category name"
//	@Param			request	body		dto.UpdateCategoryImageDTO	true	"Image request body"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Category not found"
//	@Security		BearerAuth
//	@Router			/api/custom-categories/{name}/image [put]
func (h *CategoryHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCategoryImageDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	err := h.categoryService.UpdateImage(r.Context(), chi.URLParam(r, "name"), req.Image)
	if err != nil {
		switch {
		case errors.Is(err, categoryservice.ErrCategoryNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, categoryservice.ErrImageTooLarge):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bild aktualisiert"})
}

// DeleteCustom godoc
//
//	@Summary		Delete a custom category
//	@Tags			Categories
//	@Produce		json
//	@Param			name	path		string	true	"Category name"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Category not found"
//	@Security		BearerAuth
//	@Router			/api/custom-categories/{name} [delete]
func (h *CategoryHandler) DeleteCustom(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.DeleteCustom(r.Context(), chi.URLParam(r, "name")); err != nil {
		if errors.Is(err, categoryservice.ErrCategoryNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Kategorie gelöscht"})
}

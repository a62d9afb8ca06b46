package pricematrix

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/internal/service/matrixservice"
	"github.com/rewear/rewear-pos/pkg/utils"
)

// maxUploadSize bounds the multipart body of a matrix import.
const maxUploadSize = 10 << 20

//go:generate mockgen -source=pricematrix.go -destination=mocks.go -package=pricematrix Service
type Service interface {
	Lookup(ctx context.Context, category, priceLevel, condition, relevance string) (*float64, error)
	List(ctx context.Context) ([]domain.PriceMatrixEntry, error)
	Upload(ctx context.Context, r io.Reader) (*matrixservice.UploadResult, error)
	Clear(ctx context.Context) (int, error)
	Download(ctx context.Context) ([]byte, error)
}

type MatrixHandler struct {
	matrixService Service
}

func New(matrixService Service) *MatrixHandler {
	return &MatrixHandler{
		matrixService: matrixService,
	}
}

// Lookup godoc
//
//	@Summary		Look up a fixed price
//	@Description	Resolve the fixed price for one combination; found=false when none is stored
//	@Tags			PriceMatrix
//	@Produce		json
//	@Param			category	query		string	true	"Category"
//	@Param			price_level	query		string	true	"Price level"
//	@Param			condition	query		string	true	"Condition"
//	@Param			relevance	query		string	true	"Relevance"
//	@Success		200			{object}	dto.PriceLookupResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/price-matrix/lookup [get]
func (h *MatrixHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	price, err := h.matrixService.Lookup(r.Context(),
		q.Get("category"), q.Get("price_level"), q.Get("condition"), q.Get("relevance"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PriceLookupResponseDTO{
		FixedPrice: price,
		Found:      price != nil,
	})
}

// List godoc
//
//	@Summary		List stored matrix entries
//	@Tags			PriceMatrix
//	@Produce		json
//	@Success		200	{array}		dto.PriceMatrixEntryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/price-matrix [get]
func (h *MatrixHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.matrixService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PriceMatrixEntryDTO, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, dto.PriceMatrixEntryDTO{
			Category:   entry.Category,
			PriceLevel: entry.PriceLevel,
			Condition:  entry.Condition,
			Relevance:  entry.Relevance,
			FixedPrice: entry.FixedPrice,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Upload godoc
//
//	@Summary		Import a price matrix workbook
//	@Description	Multipart upload of an xlsx file; rows with unknown enum values are skipped
//	@Tags			PriceMatrix
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Matrix workbook"
//	@Success		200		{object}	dto.MatrixUploadResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid workbook"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/price-matrix/upload [post]
func (h *MatrixHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Datei fehlt")
		return
	}
	defer file.Close()

	result, err := h.matrixService.Upload(r.Context(), file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatrixUploadResponseDTO{
		Message: fmt.Sprintf("%d Einträge importiert, %d übersprungen", result.Imported, result.Skipped),
		Updated: result.Imported,
	})
}

// Clear godoc
//
//	@Summary		Delete all matrix entries
//	@Tags			PriceMatrix
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/price-matrix [delete]
func (h *MatrixHandler) Clear(w http.ResponseWriter, r *http.Request) {
	count, err := h.matrixService.Clear(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: fmt.Sprintf("%d Einträge gelöscht", count),
	})
}

// Download godoc
//
//	@Summary		Download the full matrix as xlsx
//	@Description	Full cross product of all enumeration values with stored prices filled in
//	@Tags			PriceMatrix
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/price-matrix/download [get]
func (h *MatrixHandler) Download(w http.ResponseWriter, r *http.Request) {
	workbook, err := h.matrixService.Download(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	filename := fmt.Sprintf("preismatrix_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

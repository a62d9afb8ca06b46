package purchases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/internal/service/ledgerservice"
	"github.com/rewear/rewear-pos/internal/service/purchaseservice"
	"github.com/rewear/rewear-pos/pkg/auth"
	"github.com/rewear/rewear-pos/pkg/excel"
	"github.com/rewear/rewear-pos/pkg/utils"
)

//go:generate mockgen -source=purchases.go -destination=mocks.go -package=purchases Service
type Service interface {
	Create(ctx context.Context, items []purchaseservice.ItemInput, creditCustomerID, actingStaff string) (*domain.Purchase, error)
	Get(ctx context.Context, id string) (*domain.Purchase, error)
	List(ctx context.Context, startDate, endDate *time.Time) ([]domain.Purchase, error)
	SoftDelete(ctx context.Context, id, actingStaff string) error
	SoftDeleteAll(ctx context.Context, actingStaff string) (int, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// CreatePurchase godoc
//
//	@Summary		Record a purchase
//	@Description	Record bought items; the total is computed server-side
//	@Tags			Purchases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePurchaseRequestDTO	true	"Purchase request body"
//	@Success		201		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Credit customer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/purchases [post]
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := make([]purchaseservice.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, purchaseservice.ItemInput{
			Category:   item.Category,
			PriceLevel: item.PriceLevel,
			Condition:  item.Condition,
			Relevance:  item.Relevance,
			Price:      item.Price,
		})
	}

	identity := auth.FromContext(r.Context())
	purchase, err := h.purchaseService.Create(r.Context(), items, req.CreditCustomerID, identity.Username)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrNoItems), errors.Is(err, purchaseservice.ErrInvalidItem):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(purchase))
}

// GetPurchases godoc
//
//	@Summary		List purchases
//	@Description	List purchases, optionally bounded by start_date and end_date (YYYY-MM-DD)
//	@Tags			Purchases
//	@Produce		json
//	@Param			start_date	query		string	false	"Start date"
//	@Param			end_date	query		string	false	"End date"
//	@Success		200			{array}		dto.PurchaseResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid date"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/purchases [get]
func (h *PurchaseHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	purchases, err := h.purchaseService.List(r.Context(), startDate, endDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PurchaseResponseDTO, 0, len(purchases))
	for i := range purchases {
		resp = append(resp, toResponseDTO(&purchases[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetPurchase godoc
//
//	@Summary		Get a single purchase
//	@Tags			Purchases
//	@Produce		json
//	@Param			id	path		string	true	"Purchase ID"
//	@Success		200	{object}	dto.PurchaseResponseDTO
//	@Failure		404	{object}	utils.Response	"Purchase not found"
//	@Security		BearerAuth
//	@Router			/api/purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	purchase, err := h.purchaseService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, purchaseservice.ErrPurchaseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(purchase))
}

// DeletePurchase godoc
//
//	@Summary		Soft-delete a purchase
//	@Tags			Purchases
//	@Produce		json
//	@Param			id	path		string	true	"Purchase ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Purchase not found"
//	@Security		BearerAuth
//	@Router			/api/purchases/{id} [delete]
func (h *PurchaseHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	err := h.purchaseService.SoftDelete(r.Context(), chi.URLParam(r, "id"), identity.Username)
	if err != nil {
		if errors.Is(err, purchaseservice.ErrPurchaseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Ankauf gelöscht"})
}

// DeleteAllPurchases godoc
//
//	@Summary		Soft-delete all purchases
//	@Tags			Purchases
//	@Produce		json
//	@Success		200	{object}	dto.DeleteAllPurchasesResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/purchases [delete]
func (h *PurchaseHandler) DeleteAllPurchases(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	count, err := h.purchaseService.SoftDeleteAll(r.Context(), identity.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteAllPurchasesResponseDTO{
		Message: "Alle Ankäufe gelöscht",
		Deleted: count,
	})
}

// ExportExcel godoc
//
//	@Summary		Export purchases as xlsx
//	@Tags			Purchases
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			start_date	query	string	false	"Start date"
//	@Param			end_date	query	string	false	"End date"
//	@Success		200
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/purchases/export/excel [get]
func (h *PurchaseHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	purchases, err := h.purchaseService.List(r.Context(), startDate, endDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	workbook, err := excel.BuildPurchases(purchases)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	filename := fmt.Sprintf("ankaeufe_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

func parseDateRange(r *http.Request) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, fmt.Errorf("ungültiges Startdatum %q", raw)
		}
		startDate = &parsed
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, fmt.Errorf("ungültiges Enddatum %q", raw)
		}
		// inclusive upper bound
		end := parsed.AddDate(0, 0, 1)
		endDate = &end
	}
	return startDate, endDate, nil
}

func toResponseDTO(p *domain.Purchase) dto.PurchaseResponseDTO {
	items := make([]dto.PurchaseItemResponseDTO, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, dto.PurchaseItemResponseDTO{
			ID:         item.ID,
			Category:   item.Category,
			PriceLevel: item.PriceLevel,
			Condition:  item.Condition,
			Relevance:  item.Relevance,
			Price:      item.Price,
		})
	}
	return dto.PurchaseResponseDTO{
		ID:                 p.ID,
		Items:              items,
		Total:              p.Total,
		Timestamp:          p.Timestamp,
		StaffUsername:      p.StaffUsername,
		CreditCustomerID:   p.CreditCustomerID,
		CreditCustomerName: p.CreditCustomerName,
	}
}

package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/pkg/utils"
)

//go:generate mockgen -source=settings.go -destination=mocks.go -package=settings Service
type Service interface {
	GetGeneral(ctx context.Context) (*domain.GeneralSettings, error)
	UpdateGeneral(ctx context.Context, settings *domain.GeneralSettings) error
	GetReceipt(ctx context.Context) (*domain.ReceiptSettings, error)
	UpdateReceipt(ctx context.Context, settings *domain.ReceiptSettings) error
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetGeneral godoc
//
//	@Summary		Get general settings
//	@Description	Returns defaults when nothing was stored; the danger-zone password is never echoed
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	domain.GeneralSettings
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/settings [get]
func (h *SettingsHandler) GetGeneral(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetGeneral(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// UpdateGeneral godoc
//
//	@Summary		Update general settings
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.GeneralSettings	true	"Settings body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid or unknown fields"
//	@Security		BearerAuth
//	@Router			/api/settings [put]
func (h *SettingsHandler) UpdateGeneral(w http.ResponseWriter, r *http.Request) {
	var req domain.GeneralSettings
	if err := decodeStrict(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.settingsService.UpdateGeneral(r.Context(), &req); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Einstellungen gespeichert"})
}

// GetReceipt godoc
//
//	@Summary		Get receipt settings
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	domain.ReceiptSettings
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/settings/receipt [get]
func (h *SettingsHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetReceipt(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// UpdateReceipt godoc
//
//	@Summary		Update receipt settings
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.ReceiptSettings	true	"Settings body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid or unknown fields"
//	@Security		BearerAuth
//	@Router			/api/settings/receipt [put]
func (h *SettingsHandler) UpdateReceipt(w http.ResponseWriter, r *http.Request) {
	var req domain.ReceiptSettings
	if err := decodeStrict(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.settingsService.UpdateReceipt(r.Context(), &req); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Einstellungen gespeichert"})
}

// decodeStrict rejects unknown fields so typos in a settings payload
// fail loudly instead of silently dropping data.
func decodeStrict(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

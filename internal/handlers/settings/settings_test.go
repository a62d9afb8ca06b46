package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewear/rewear-pos/internal/domain"
)

func NewMock(t *testing.T) (*SettingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetGeneralHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetGeneral(gomock.Any()).Return(domain.DefaultGeneralSettings(), nil)

	req := httptest.NewRequest("GET", "/api/settings", nil)
	rr := httptest.NewRecorder()

	handler.GetGeneral(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp domain.GeneralSettings
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "#FEF3C7", resp.Colors.Luxus)
	assert.Empty(t, resp.DangerZonePassword)
}

func TestUpdateGeneralHandler(t *testing.T) {
	t.Run("Valid payload", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().UpdateGeneral(gomock.Any(), gomock.Any()).Return(nil)

		body := `{"colors":{"luxus":"#FFFFFF","teuer":"#DBEAFE","mittel":"#D1FAE5","guenstig":"#F1F5F9"}}`
		req := httptest.NewRequest("PUT", "/api/settings", bytes.NewReader([]byte(body)))
		rr := httptest.NewRecorder()

		handler.UpdateGeneral(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("Unknown field is rejected", func(t *testing.T) {
		handler, _ := NewMock(t)

		body := `{"colors":{"luxus":"#FFFFFF"},"tippfehler":true}`
		req := httptest.NewRequest("PUT", "/api/settings", bytes.NewReader([]byte(body)))
		rr := httptest.NewRecorder()

		handler.UpdateGeneral(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestReceiptHandlers(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetReceipt(gomock.Any()).Return(&domain.ReceiptSettings{StoreName: "ReWear"}, nil)

		req := httptest.NewRequest("GET", "/api/settings/receipt", nil)
		rr := httptest.NewRecorder()

		handler.GetReceipt(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("Update", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().UpdateReceipt(gomock.Any(), gomock.Any()).Return(nil)

		body := `{"store_name":"ReWear Basel","address_lines":["Hauptstrasse 1"],"footer":"Danke!"}`
		req := httptest.NewRequest("PUT", "/api/settings/receipt", bytes.NewReader([]byte(body)))
		rr := httptest.NewRecorder()

		handler.UpdateReceipt(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

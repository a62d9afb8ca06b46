package pricematrix

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/internal/service/matrixservice"
)

func NewMock(t *testing.T) (*MatrixHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLookupHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		handler, service := NewMock(t)
		fixed := 14.0
		service.EXPECT().Lookup(gomock.Any(), "Jeans", "Mittel", "Neu", "Wichtig").Return(&fixed, nil)

		req := httptest.NewRequest("GET",
			"/api/price-matrix/lookup?category=Jeans&price_level=Mittel&condition=Neu&relevance=Wichtig", nil)
		rr := httptest.NewRecorder()

		handler.Lookup(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PriceLookupResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Found)
		assert.Equal(t, 14.0, *resp.FixedPrice)
	})
	t.Run("Absent combination is found=false, not 404", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/price-matrix/lookup", nil)
		rr := httptest.NewRecorder()

		handler.Lookup(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PriceLookupResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Found)
		assert.Nil(t, resp.FixedPrice)
	})
}

func TestUploadHandler(t *testing.T) {
	t.Run("Multipart import", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(&matrixservice.UploadResult{Imported: 3, Skipped: 1}, nil)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("file", "matrix.xlsx")
		require.NoError(t, err)
		part.Write([]byte("workbook bytes"))
		writer.Close()

		req := httptest.NewRequest("POST", "/api/price-matrix/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()

		handler.Upload(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.MatrixUploadResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 3, resp.Updated)
	})
	t.Run("Missing file part", func(t *testing.T) {
		handler, _ := NewMock(t)
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.Close()

		req := httptest.NewRequest("POST", "/api/price-matrix/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()

		handler.Upload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDownloadHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Download(gomock.Any()).Return([]byte("xlsx bytes"), nil)

	req := httptest.NewRequest("GET", "/api/price-matrix/download", nil)
	rr := httptest.NewRecorder()

	handler.Download(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "preismatrix_")
}

func TestClearHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Clear(gomock.Any()).Return(12, nil)

	req := httptest.NewRequest("DELETE", "/api/price-matrix", nil)
	rr := httptest.NewRecorder()

	handler.Clear(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "12")
}

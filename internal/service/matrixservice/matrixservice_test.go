package matrixservice

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/pkg/excel"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCatalogProvider) {
	ctrl := gomock.NewController(t)
	matrixRepo := NewMockRepo(ctrl)
	catalog := NewMockCatalogProvider(ctrl)
	service := New(matrixRepo, catalog)
	defer ctrl.Finish()
	return service, matrixRepo, catalog
}

func price(v float64) *float64 { return &v }

func TestLookup(t *testing.T) {
	t.Run("Stored combination", func(t *testing.T) {
		service, matrixRepo, _ := NewMock(t)
		matrixRepo.EXPECT().Find(gomock.Any(), "Jeans", "Mittel", "Gebraucht/Gut", "Wichtig").
			Return(&domain.PriceMatrixEntry{Category: "Jeans", FixedPrice: price(14)}, nil)

		got, err := service.Lookup(context.Background(), "Jeans", "Mittel", "Gebraucht/Gut", "Wichtig")
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 14.0, *got)
	})
	t.Run("Unknown combination is not an error", func(t *testing.T) {
		service, matrixRepo, _ := NewMock(t)
		matrixRepo.EXPECT().Find(gomock.Any(), "Jeans", "Luxus", "Neu", "Wichtig").Return(nil, nil)

		got, err := service.Lookup(context.Background(), "Jeans", "Luxus", "Neu", "Wichtig")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUpload(t *testing.T) {
	workbook, err := excel.BuildPriceMatrix([]domain.PriceMatrixEntry{
		{Category: "Jeans", PriceLevel: "Mittel", Condition: "Gebraucht/Gut", Relevance: "Wichtig", FixedPrice: price(14)},
		{Category: "Atomreaktoren", PriceLevel: "Mittel", Condition: "Gebraucht/Gut", Relevance: "Wichtig", FixedPrice: price(9)},
		{Category: "Hosen", PriceLevel: "Teuer", Condition: "Neu", Relevance: "Stark relevant", FixedPrice: nil},
	})
	require.NoError(t, err)

	service, matrixRepo, catalog := NewMock(t)
	catalog.EXPECT().Catalog(gomock.Any()).Return(domain.NewCatalog(nil), nil)
	matrixRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, entry *domain.PriceMatrixEntry) error {
			assert.NotEqual(t, "Atomreaktoren", entry.Category)
			return nil
		})

	result, err := service.Upload(context.Background(), bytes.NewReader(workbook))
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
}

func TestUploadBadWorkbook(t *testing.T) {
	service, _, _ := NewMock(t)
	_, err := service.Upload(context.Background(), bytes.NewReader([]byte("not an xlsx")))
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	service, matrixRepo, _ := NewMock(t)
	matrixRepo.EXPECT().Clear(gomock.Any()).Return(42, nil)

	count, err := service.Clear(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestDownload(t *testing.T) {
	service, matrixRepo, catalog := NewMock(t)
	catalog.EXPECT().Catalog(gomock.Any()).Return(domain.NewCatalog([]string{"Vintage"}), nil)
	matrixRepo.EXPECT().List(gomock.Any()).Return([]domain.PriceMatrixEntry{
		{Category: "Vintage", PriceLevel: "Mittel", Condition: "Neu", Relevance: "Wichtig", FixedPrice: price(20)},
	}, nil)

	workbook, err := service.Download(context.Background())
	require.NoError(t, err)

	parsed, err := excel.ParsePriceMatrix(bytes.NewReader(workbook))
	require.NoError(t, err)

	// full cross-product, custom category included
	want := (len(domain.Categories) + 1) * len(domain.PriceLevels) * len(domain.Conditions) * len(domain.RelevanceLevels)
	assert.Len(t, parsed, want)

	var found bool
	for _, entry := range parsed {
		if entry.Category == "Vintage" && entry.PriceLevel == "Mittel" && entry.Condition == "Neu" && entry.Relevance == "Wichtig" {
			require.NotNil(t, entry.FixedPrice)
			assert.Equal(t, 20.0, *entry.FixedPrice)
			found = true
		}
	}
	assert.True(t, found)
}

func TestDownloadRepoError(t *testing.T) {
	service, matrixRepo, catalog := NewMock(t)
	catalog.EXPECT().Catalog(gomock.Any()).Return(domain.NewCatalog(nil), nil)
	matrixRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := service.Download(context.Background())
	assert.Error(t, err)
}

package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rewear/rewear-pos/internal/domain"
)

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Formula with equals sign",
			input:    "=cmd|' /C calc'!A1",
			expected: "'=cmd|' /C calc'!A1",
		},
		{
			name:     "Leading plus",
			input:    "+SUM(A1:A3)",
			expected: "'+SUM(A1:A3)",
		},
		{
			name:     "Leading minus",
			input:    "-1+1",
			expected: "'-1+1",
		},
		{
			name:     "Leading at sign",
			input:    "@HYPERLINK",
			expected: "'@HYPERLINK",
		},
		{
			name:     "Plain value untouched",
			input:    "Kleider",
			expected: "Kleider",
		},
		{
			name:     "Empty value",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeCell(tt.input))
		})
	}
}

func TestBuildPriceMatrixRoundTrip(t *testing.T) {
	price := 12.5
	entries := []domain.PriceMatrixEntry{
		{Category: "Kleider", PriceLevel: "Luxus", Condition: "Neu", Relevance: "Wichtig", FixedPrice: &price},
		{Category: "Jeans", PriceLevel: "Mittel", Condition: "Abgenutzt", Relevance: "Nicht beliebt"},
	}

	data, err := BuildPriceMatrix(entries)
	require.NoError(t, err)

	parsed, err := ParsePriceMatrix(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, "Kleider", parsed[0].Category)
	require.NotNil(t, parsed[0].FixedPrice)
	assert.Equal(t, 12.5, *parsed[0].FixedPrice)
	assert.Nil(t, parsed[1].FixedPrice)
}

func TestParsePriceMatrixMissingColumns(t *testing.T) {
	f := excelize.NewFile()
	header := []any{"Kategorie", "Preisniveau"}
	err := f.SetSheetRow("Sheet1", "A1", &header)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err = ParsePriceMatrix(&buf)
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestBuildCustomersEscapesFormulas(t *testing.T) {
	customers := []domain.Customer{
		{
			ID:        "C1",
			FirstName: "=cmd|' /C calc'!A1",
			LastName:  "Doe",
			Email:     "test@test.com",
			CreatedAt: time.Now(),
		},
	}

	data, err := BuildCustomers(customers, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	val, err := f.GetCellValue("Kunden", "B2")
	require.NoError(t, err)
	assert.Equal(t, "'=cmd|' /C calc'!A1", val)
}

func TestBuildPurchasesOneRowPerItem(t *testing.T) {
	purchases := []domain.Purchase{
		{
			ID:        "p-1",
			Timestamp: time.Now(),
			Total:     25.5,
			Items: []domain.PurchaseItem{
				{Category: "Kleider", PriceLevel: "Luxus", Condition: "Neu", Relevance: "Wichtig", Price: 10},
				{Category: "Jeans", PriceLevel: "Mittel", Condition: "Neu", Relevance: "Wichtig", Price: 15.5},
			},
		},
	}

	data, err := BuildPurchases(purchases)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ankäufe")
	require.NoError(t, err)
	assert.Len(t, rows, 3) // header + 2 items
}

package excel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rewear/rewear-pos/internal/domain"
)

// Column headers of the price matrix sheet. Uploads must carry exactly
// these, downloads always produce them.
var MatrixColumns = []string{"Kategorie", "Preisniveau", "Zustand", "Relevanz", "Fixpreis"}

var ErrMissingColumns = errors.New("Excel muss Spalten: Kategorie, Preisniveau, Zustand, Relevanz, Fixpreis enthalten")

// EscapeCell neutralizes spreadsheet formula injection: a leading '=',
// '+', '-' or '@' gets a quote prefix so the value stays inert text.
func EscapeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

func writeRow(f *excelize.File, sheet string, rowIdx int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return err
	}
	escaped := make([]any, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			escaped[i] = EscapeCell(s)
		} else {
			escaped[i] = v
		}
	}
	return f.SetSheetRow(sheet, cell, &escaped)
}

func newWorkbook(sheet string, header []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := writeRow(f, sheet, 1, headerRow); err != nil {
		return nil, err
	}
	return f, nil
}

func render(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildPriceMatrix produces the Preismatrix sheet from pre-assembled
// rows (full cross product, existing fixed prices filled in).
func BuildPriceMatrix(entries []domain.PriceMatrixEntry) ([]byte, error) {
	f, err := newWorkbook("Preismatrix", MatrixColumns)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		price := any("")
		if e.FixedPrice != nil {
			price = *e.FixedPrice
		}
		row := []any{e.Category, e.PriceLevel, e.Condition, e.Relevance, price}
		if err := writeRow(f, "Preismatrix", i+2, row); err != nil {
			return nil, err
		}
	}
	return render(f)
}

// ParsePriceMatrix reads an uploaded workbook. Rows with a blank or
// unparseable Fixpreis keep a nil price; enum validation happens in the
// service, not here.
func ParsePriceMatrix(r io.Reader) ([]domain.PriceMatrixEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("can't open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	colIdx := make(map[string]int)
	for i, name := range rows[0] {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, required := range MatrixColumns {
		if _, ok := colIdx[required]; !ok {
			return nil, ErrMissingColumns
		}
	}

	cell := func(row []string, name string) string {
		idx := colIdx[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var entries []domain.PriceMatrixEntry
	for _, row := range rows[1:] {
		entry := domain.PriceMatrixEntry{
			Category:   cell(row, "Kategorie"),
			PriceLevel: cell(row, "Preisniveau"),
			Condition:  cell(row, "Zustand"),
			Relevance:  cell(row, "Relevanz"),
		}
		if raw := cell(row, "Fixpreis"); raw != "" {
			if price, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err == nil {
				entry.FixedPrice = &price
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// BuildPurchases produces the Ankäufe sheet, one row per item so the
// export stays filterable by category.
func BuildPurchases(purchases []domain.Purchase) ([]byte, error) {
	header := []string{"Datum", "Ankauf-ID", "Mitarbeiter", "Kategorie", "Preisniveau", "Zustand", "Relevanz", "Preis", "Gesamt", "Kunde"}
	f, err := newWorkbook("Ankäufe", header)
	if err != nil {
		return nil, err
	}

	rowIdx := 2
	for _, p := range purchases {
		for _, item := range p.Items {
			row := []any{
				p.Timestamp.Format("02.01.2006 15:04"),
				p.ID,
				p.StaffUsername,
				item.Category,
				item.PriceLevel,
				item.Condition,
				item.Relevance,
				item.Price,
				p.Total,
				p.CreditCustomerName,
			}
			if err := writeRow(f, "Ankäufe", rowIdx, row); err != nil {
				return nil, err
			}
			rowIdx++
		}
	}
	return render(f)
}

// BuildCustomers produces the Kunden and Transaktionen sheets.
func BuildCustomers(customers []domain.Customer, transactions []domain.CreditTransaction) ([]byte, error) {
	f, err := newWorkbook("Kunden", []string{"Kunden-ID", "Vorname", "Nachname", "E-Mail", "Adresse", "Telefon", "Guthaben", "Erstellt am"})
	if err != nil {
		return nil, err
	}
	for i, c := range customers {
		row := []any{c.ID, c.FirstName, c.LastName, c.Email, c.Address, c.Phone, c.CurrentBalance, c.CreatedAt.Format("02.01.2006")}
		if err := writeRow(f, "Kunden", i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Transaktionen"); err != nil {
		return nil, err
	}
	txHeader := []any{"Datum", "Kunden-ID", "Typ", "Betrag", "Beschreibung", "Mitarbeiter"}
	if err := writeRow(f, "Transaktionen", 1, txHeader); err != nil {
		return nil, err
	}
	for i, tx := range transactions {
		row := []any{tx.Timestamp.Format("02.01.2006 15:04"), tx.CustomerID, tx.Type, tx.Amount, tx.Description, tx.StaffUsername}
		if err := writeRow(f, "Transaktionen", i+2, row); err != nil {
			return nil, err
		}
	}
	return render(f)
}

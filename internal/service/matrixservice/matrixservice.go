// Package matrixservice manages the fixed-price matrix: one optional
// price per (category, price level, condition, relevance) combination.
package matrixservice

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/pkg/excel"
)

//go:generate mockgen -source=matrixservice.go -destination=mocks.go -package=matrixservice Repo,CatalogProvider

type Repo interface {
	Find(ctx context.Context, category, priceLevel, condition, relevance string) (*domain.PriceMatrixEntry, error)
	List(ctx context.Context) ([]domain.PriceMatrixEntry, error)
	Upsert(ctx context.Context, entry *domain.PriceMatrixEntry) error
	Clear(ctx context.Context) (int, error)
}

type CatalogProvider interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
}

type Service struct {
	matrixRepo Repo
	catalog    CatalogProvider
}

func New(matrixRepo Repo, catalog CatalogProvider) *Service {
	return &Service{matrixRepo: matrixRepo, catalog: catalog}
}

// Lookup returns the fixed price for a combination, or nil when none is
// stored. Unknown combinations are not an error; the till simply falls
// back to a free price.
func (s *Service) Lookup(ctx context.Context, category, priceLevel, condition, relevance string) (*float64, error) {
	entry, err := s.matrixRepo.Find(ctx, category, priceLevel, condition, relevance)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return entry.FixedPrice, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PriceMatrixEntry, error) {
	return s.matrixRepo.List(ctx)
}

// UploadResult summarizes a bulk import: rows with an unknown dimension
// value or an unparsable price are skipped, not rejected.
type UploadResult struct {
	Imported int
	Skipped  int
}

// Upload parses an xlsx workbook and upserts every valid row. Unlike
// purchase recording, validation here is lenient: bad rows are counted
// and dropped so one typo does not block a 300-row import.
func (s *Service) Upload(ctx context.Context, r io.Reader) (*UploadResult, error) {
	entries, err := excel.ParsePriceMatrix(r)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{}
	for i := range entries {
		entry := &entries[i]
		if !catalog.HasCategory(entry.Category) ||
			!catalog.HasPriceLevel(entry.PriceLevel) ||
			!catalog.HasCondition(entry.Condition) ||
			!catalog.HasRelevance(entry.Relevance) {
			result.Skipped++
			continue
		}
		if err := s.matrixRepo.Upsert(ctx, entry); err != nil {
			zap.L().Error("can't upsert matrix entry", zap.Error(err))
			return nil, err
		}
		result.Imported++
	}

	zap.L().Info("price matrix imported",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

func (s *Service) Clear(ctx context.Context) (int, error) {
	count, err := s.matrixRepo.Clear(ctx)
	if err != nil {
		return 0, err
	}
	zap.L().Info("price matrix cleared", zap.Int("count", count))
	return count, nil
}

// Download renders the full cross-product of catalog dimensions,
// including custom categories, as an xlsx workbook. Combinations with a
// stored price carry it; the rest have an empty price cell so staff can
// fill the sheet in and upload it back.
func (s *Service) Download(ctx context.Context) ([]byte, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.matrixRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	prices := make(map[[4]string]*float64, len(stored))
	for _, entry := range stored {
		prices[[4]string{entry.Category, entry.PriceLevel, entry.Condition, entry.Relevance}] = entry.FixedPrice
	}

	var rows []domain.PriceMatrixEntry
	for _, category := range catalog.Categories() {
		for _, level := range domain.PriceLevels {
			for _, condition := range domain.Conditions {
				for _, relevance := range domain.RelevanceLevels {
					rows = append(rows, domain.PriceMatrixEntry{
						Category:   category,
						PriceLevel: level,
						Condition:  condition,
						Relevance:  relevance,
						FixedPrice: prices[[4]string{category, level, condition, relevance}],
					})
				}
			}
		}
	}
	return excel.BuildPriceMatrix(rows)
}

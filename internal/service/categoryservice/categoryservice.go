// Package categoryservice exposes the purchase-form enumerations and
// manages custom categories on top of the standard German lists.
package categoryservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
)

//go:generate mockgen -source=categoryservice.go -destination=mocks.go -package=categoryservice Repo

// MaxImageSize bounds the base64 image payload of a custom category.
const MaxImageSize = 2 << 20

type Repo interface {
	List(ctx context.Context) ([]domain.CustomCategory, error)
	FindByName(ctx context.Context, name string) (*domain.CustomCategory, error)
	Create(ctx context.Context, category *domain.CustomCategory) error
	UpdateImage(ctx context.Context, name, image string) (bool, error)
	Delete(ctx context.Context, name string) (bool, error)
}

var (
	ErrEmptyName        = errors.New("Name darf nicht leer sein")
	ErrStandardCategory = errors.New("Name kollidiert mit einer Standardkategorie")
	ErrCategoryExists   = errors.New("Kategorie existiert bereits")
	ErrCategoryNotFound = errors.New("Kategorie nicht gefunden")
	ErrImageTooLarge    = errors.New("Bild ist zu gross (max. 2 MB)")
)

type Service struct {
	categoryRepo Repo
}

func New(categoryRepo Repo) *Service {
	return &Service{categoryRepo: categoryRepo}
}

// Enumerations is the static portion of the purchase form vocabulary.
type Enumerations struct {
	Categories      []string `json:"categories"`
	PriceLevels     []string `json:"price_levels"`
	Conditions      []string `json:"conditions"`
	RelevanceLevels []string `json:"relevance_levels"`
}

func (s *Service) Enumerations() Enumerations {
	return Enumerations{
		Categories:      domain.Categories,
		PriceLevels:     domain.PriceLevels,
		Conditions:      domain.Conditions,
		RelevanceLevels: domain.RelevanceLevels,
	}
}

func (s *Service) ListCustom(ctx context.Context) ([]domain.CustomCategory, error) {
	return s.categoryRepo.List(ctx)
}

func (s *Service) AddCustom(ctx context.Context, name, image string) (*domain.CustomCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if domain.IsStandardCategory(name) {
		return nil, ErrStandardCategory
	}
	if len(image) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &domain.CustomCategory{Name: name, Image: image}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		zap.L().Error("can't create custom category", zap.Error(err))
		return nil, err
	}
	zap.L().Info("custom category added", zap.String("name", name))
	return category, nil
}

func (s *Service) UpdateImage(ctx context.Context, name, image string) error {
	if len(image) > MaxImageSize {
		return ErrImageTooLarge
	}
	updated, err := s.categoryRepo.UpdateImage(ctx, name, image)
	if err != nil {
		return err
	}
	if !updated {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Service) DeleteCustom(ctx context.Context, name string) error {
	deleted, err := s.categoryRepo.Delete(ctx, name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	zap.L().Info("custom category deleted", zap.String("name", name))
	return nil
}

// Catalog builds the current validation catalog; purchase recording and
// matrix import consume it through their CatalogProvider interfaces.
func (s *Service) Catalog(ctx context.Context) (*domain.Catalog, error) {
	custom, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(custom))
	for _, c := range custom {
		names = append(names, c.Name)
	}
	return domain.NewCatalog(names), nil
}

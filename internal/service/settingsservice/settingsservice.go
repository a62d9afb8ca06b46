// Package settingsservice stores the two application settings documents,
// general (colors, danger-zone password) and receipt layout.
package settingsservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
	settingsrepo "github.com/rewear/rewear-pos/internal/repo/settings-repo"
)

//go:generate mockgen -source=settingsservice.go -destination=mocks.go -package=settingsservice Repo

type Repo interface {
	Get(ctx context.Context, kind string, out any) (bool, error)
	Put(ctx context.Context, kind string, value any) error
}

type Service struct {
	settingsRepo Repo
}

func New(settingsRepo Repo) *Service {
	return &Service{settingsRepo: settingsRepo}
}

// GetGeneral returns the stored general settings, or defaults when none
// were saved yet. The danger-zone password is blanked: it is write-only
// from the client's point of view.
func (s *Service) GetGeneral(ctx context.Context) (*domain.GeneralSettings, error) {
	settings := domain.DefaultGeneralSettings()
	found, err := s.settingsRepo.Get(ctx, settingsrepo.KindGeneral, settings)
	if err != nil {
		return nil, err
	}
	if !found {
		return settings, nil
	}
	settings.DangerZonePassword = ""
	return settings, nil
}

// UpdateGeneral replaces the general settings. An empty danger-zone
// password in the payload keeps the stored one.
func (s *Service) UpdateGeneral(ctx context.Context, settings *domain.GeneralSettings) error {
	if settings.DangerZonePassword == "" {
		stored := domain.GeneralSettings{}
		found, err := s.settingsRepo.Get(ctx, settingsrepo.KindGeneral, &stored)
		if err != nil {
			return err
		}
		if found {
			settings.DangerZonePassword = stored.DangerZonePassword
		}
	}
	if err := s.settingsRepo.Put(ctx, settingsrepo.KindGeneral, settings); err != nil {
		zap.L().Error("can't save general settings", zap.Error(err))
		return err
	}
	zap.L().Info("general settings updated")
	return nil
}

func (s *Service) GetReceipt(ctx context.Context) (*domain.ReceiptSettings, error) {
	settings := domain.DefaultReceiptSettings()
	if _, err := s.settingsRepo.Get(ctx, settingsrepo.KindReceipt, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Service) UpdateReceipt(ctx context.Context, settings *domain.ReceiptSettings) error {
	if err := s.settingsRepo.Put(ctx, settingsrepo.KindReceipt, settings); err != nil {
		zap.L().Error("can't save receipt settings", zap.Error(err))
		return err
	}
	zap.L().Info("receipt settings updated")
	return nil
}

package settingsservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewear/rewear-pos/internal/domain"
	settingsrepo "github.com/rewear/rewear-pos/internal/repo/settings-repo"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	settingsRepo := NewMockRepo(ctrl)
	service := New(settingsRepo)
	defer ctrl.Finish()
	return service, settingsRepo
}

func TestGetGeneral(t *testing.T) {
	t.Run("Defaults when unset", func(t *testing.T) {
		service, settingsRepo := NewMock(t)
		settingsRepo.EXPECT().Get(gomock.Any(), settingsrepo.KindGeneral, gomock.Any()).Return(false, nil)

		settings, err := service.GetGeneral(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "#FEF3C7", settings.Colors.Luxus)
		assert.Empty(t, settings.DangerZonePassword)
	})
	t.Run("Never echoes the danger-zone password", func(t *testing.T) {
		service, settingsRepo := NewMock(t)
		settingsRepo.EXPECT().Get(gomock.Any(), settingsrepo.KindGeneral, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, out any) (bool, error) {
				settings := out.(*domain.GeneralSettings)
				settings.DangerZonePassword = "geheim"
				settings.Colors.Luxus = "#FFFFFF"
				return true, nil
			})

		settings, err := service.GetGeneral(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, settings.DangerZonePassword)
		assert.Equal(t, "#FFFFFF", settings.Colors.Luxus)
	})
}

func TestUpdateGeneral(t *testing.T) {
	t.Run("Empty password keeps the stored one", func(t *testing.T) {
		service, settingsRepo := NewMock(t)
		settingsRepo.EXPECT().Get(gomock.Any(), settingsrepo.KindGeneral, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, out any) (bool, error) {
				out.(*domain.GeneralSettings).DangerZonePassword = "geheim"
				return true, nil
			})
		settingsRepo.EXPECT().Put(gomock.Any(), settingsrepo.KindGeneral, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				assert.Equal(t, "geheim", value.(*domain.GeneralSettings).DangerZonePassword)
				return nil
			})

		err := service.UpdateGeneral(context.Background(), &domain.GeneralSettings{
			Colors: domain.DefaultGeneralSettings().Colors,
		})
		assert.NoError(t, err)
	})
	t.Run("New password is written through", func(t *testing.T) {
		service, settingsRepo := NewMock(t)
		settingsRepo.EXPECT().Put(gomock.Any(), settingsrepo.KindGeneral, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				assert.Equal(t, "neu", value.(*domain.GeneralSettings).DangerZonePassword)
				return nil
			})

		err := service.UpdateGeneral(context.Background(), &domain.GeneralSettings{DangerZonePassword: "neu"})
		assert.NoError(t, err)
	})
}

func TestReceipt(t *testing.T) {
	t.Run("Defaults when unset", func(t *testing.T) {
		service, settingsRepo := NewMock(t)
		settingsRepo.EXPECT().Get(gomock.Any(), settingsrepo.KindReceipt, gomock.Any()).Return(false, nil)

		settings, err := service.GetReceipt(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "ReWear", settings.StoreName)
	})
	t.Run("Update stores the document", func(t *testing.T) {
		service, settingsRepo := NewMock(t)
		update := &domain.ReceiptSettings{StoreName: "ReWear Basel", Footer: "Danke!"}
		settingsRepo.EXPECT().Put(gomock.Any(), settingsrepo.KindReceipt, update).Return(nil)

		assert.NoError(t, service.UpdateReceipt(context.Background(), update))
	})
}

package categoryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rewear/rewear-pos/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name: "List custom categories",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"name", "image"}).
					AddRow("Vintage", "data:image/png;base64,AAAA").
					AddRow("Wanderschuhe", "")
				mock.ExpectQuery(regexp.QuoteMeta("SELECT name, image FROM custom_categories ORDER BY name")).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT name, image FROM custom_categories ORDER BY name")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByName(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Category found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT name, image FROM custom_categories WHERE name = $1")).
			WithArgs("Vintage").
			WillReturnRows(pgxmock.NewRows([]string{"name", "image"}).AddRow("Vintage", ""))

		result, err := repo.FindByName(context.Background(), "Vintage")
		assert.NoError(t, err)
		assert.Equal(t, &domain.CustomCategory{Name: "Vintage"}, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Category not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT name, image FROM custom_categories WHERE name = $1")).
			WithArgs("Raumanzüge").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByName(context.Background(), "Raumanzüge")
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO custom_categories (name, image) VALUES ($1, $2)")).
		WithArgs("Vintage", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &domain.CustomCategory{Name: "Vintage"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateImage(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		updated   bool
	}{
		{
			name: "Image updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE custom_categories SET image = $2 WHERE name = $1")).
					WithArgs("Vintage", "data:image/png;base64,BBBB").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name: "Category missing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE custom_categories SET image = $2 WHERE name = $1")).
					WithArgs("Vintage", "data:image/png;base64,BBBB").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateImage(context.Background(), "Vintage", "data:image/png;base64,BBBB")
			assert.NoError(t, err)
			assert.Equal(t, tt.updated, updated)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM custom_categories WHERE name = $1")).
		WithArgs("Vintage").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), "Vintage")
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

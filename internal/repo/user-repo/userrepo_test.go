package userrepo

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

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "smilla",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "role"}).
					AddRow(2, "smilla", "hashed_password", "mitarbeiter")
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE username = $1")).
					WithArgs("smilla").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           2,
				Username:     "smilla",
				PasswordHash: "hashed_password",
				Role:         "mitarbeiter",
			},
		},
		{
			name:     "User not found",
			username: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE username = $1")).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:     "Database error",
			username: "smilla",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users WHERE username = $1")).
					WithArgs("smilla").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "role"}).
		AddRow(1, "admin", "hash-a", "admin").
		AddRow(2, "smilla", "hash-s", "mitarbeiter")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, role FROM users ORDER BY username")).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	user := &domain.User{Username: "admin", PasswordHash: "hash-a", Role: "admin"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Upsert user successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash, role)")).
					WithArgs("admin", "hash-a", "admin").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash, role)")).
					WithArgs("admin", "hash-a", "admin").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Upsert(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

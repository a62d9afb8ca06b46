package repo

import (
	"github.com/rewear/rewear-pos/internal/pg"
	categoryrepo "github.com/rewear/rewear-pos/internal/repo/category-repo"
	customerrepo "github.com/rewear/rewear-pos/internal/repo/customer-repo"
	matrixrepo "github.com/rewear/rewear-pos/internal/repo/matrix-repo"
	purchaserepo "github.com/rewear/rewear-pos/internal/repo/purchase-repo"
	settingsrepo "github.com/rewear/rewear-pos/internal/repo/settings-repo"
	transactionrepo "github.com/rewear/rewear-pos/internal/repo/transaction-repo"
	userrepo "github.com/rewear/rewear-pos/internal/repo/user-repo"
	"github.com/rewear/rewear-pos/internal/service/authservice"
	"github.com/rewear/rewear-pos/internal/service/categoryservice"
	"github.com/rewear/rewear-pos/internal/service/ledgerservice"
	"github.com/rewear/rewear-pos/internal/service/matrixservice"
	"github.com/rewear/rewear-pos/internal/service/purchaseservice"
	"github.com/rewear/rewear-pos/internal/service/settingsservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	CustomerRepo    ledgerservice.CustomerRepo
	TransactionRepo ledgerservice.TransactionRepo
	PurchaseRepo    purchaseservice.Repo
	MatrixRepo      matrixservice.Repo
	CategoryRepo    categoryservice.Repo
	SettingsRepo    settingsservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		CustomerRepo:    customerrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		PurchaseRepo:    purchaserepo.New(conn, txManager),
		MatrixRepo:      matrixrepo.New(conn),
		CategoryRepo:    categoryrepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
	}
}

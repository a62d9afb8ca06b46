package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/internal/service/ledgerservice"
	"github.com/rewear/rewear-pos/pkg/auth"
	"github.com/rewear/rewear-pos/pkg/excel"
	"github.com/rewear/rewear-pos/pkg/utils"
)

//go:generate mockgen -source=customers.go -destination=mocks.go -package=customers Service
type Service interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomerWithTransactions(ctx context.Context, id string) (*domain.Customer, []domain.CreditTransaction, error)
	ListCustomers(ctx context.Context, search string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ManualAdjust(ctx context.Context, customerID string, amount float64, kind, description, referenceID, actingStaff string) (*domain.CreditTransaction, error)
	Snapshot(ctx context.Context) ([]domain.Customer, []domain.CreditTransaction, error)
}

type CustomerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *CustomerHandler {
	return &CustomerHandler{
		ledgerService: ledgerService,
	}
}

// CreateCustomer godoc
//
//	@Summary		Register a credit customer
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCustomerRequestDTO	true	"Customer request body"
//	@Success		201		{object}	dto.CustomerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Security		BearerAuth
//	@Router			/api/customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Vorname, Nachname und E-Mail sind erforderlich")
		return
	}
	customer, err := h.ledgerService.CreateCustomer(r.Context(), &domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, ledgerservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(customer))
}

// ListCustomers godoc
//
//	@Summary		List credit customers
//	@Tags			Customers
//	@Produce		json
//	@Param			search	query		string	false	"Name or email filter"
//	@Success		200		{array}		dto.CustomerResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.ledgerService.ListCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.CustomerResponseDTO, 0, len(customers))
	for i := range customers {
		resp = append(resp, toResponseDTO(&customers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetCustomer godoc
//
//	@Summary		Get a customer with their transaction history
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path		string	true	"Customer ID"
//	@Success		200	{object}	dto.CustomerDetailResponseDTO
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Security		BearerAuth
//	@Router			/api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, transactions, err := h.ledgerService.GetCustomerWithTransactions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ledgerservice.ErrCustomerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := dto.CustomerDetailResponseDTO{
		CustomerResponseDTO: toResponseDTO(customer),
		Transactions:        make([]dto.TransactionResponseDTO, 0, len(transactions)),
	}
	for _, tx := range transactions {
		resp.Transactions = append(resp.Transactions, toTransactionDTO(&tx))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateCustomer godoc
//
//	@Summary		Update customer master data
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Customer ID"
//	@Param			request	body		dto.UpdateCustomerRequestDTO	true	"Update request body"
//	@Success		200		{object}	dto.CustomerResponseDTO
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Failure		409		{object}	utils.Response	"Email already taken"
//	@Security		BearerAuth
//	@Router			/api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	customer, err := h.ledgerService.UpdateCustomer(r.Context(), &domain.Customer{
		ID:        chi.URLParam(r, "id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(customer))
}

// DeleteCustomer godoc
//
//	@Summary		Delete a customer and their ledger
//	@Tags			Customers
//	@Produce		json
//	@Param			id	path		string	true	"Customer ID"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Customer not found"
//	@Security		BearerAuth
//	@Router			/api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerService.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ledgerservice.ErrCustomerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Kunde gelöscht"})
}

// CreateTransaction godoc
//
//	@Summary		Append a manual credit or debit
//	@Description	"credit" entries are stored positive, "debit" entries negative
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Customer ID"
//	@Param			request	body		dto.CreateTransactionRequestDTO	true	"Transaction request body"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown transaction kind"
//	@Failure		404		{object}	utils.Response	"Customer not found"
//	@Security		BearerAuth
//	@Router			/api/customers/{id}/transactions [post]
func (h *CustomerHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	identity := auth.FromContext(r.Context())
	tx, err := h.ledgerService.ManualAdjust(r.Context(), chi.URLParam(r, "id"),
		req.Amount, req.Type, req.Description, req.ReferenceID, identity.Username)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrUnknownKind):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrCustomerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(tx))
}

// ExportExcel godoc
//
//	@Summary		Export customers and transactions as xlsx
//	@Tags			Customers
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/customers/export/excel [get]
func (h *CustomerHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	customers, transactions, err := h.ledgerService.Snapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	workbook, err := excel.BuildCustomers(customers, transactions)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	filename := fmt.Sprintf("kunden_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}

func toResponseDTO(c *domain.Customer) dto.CustomerResponseDTO {
	return dto.CustomerResponseDTO{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Address:        c.Address,
		Phone:          c.Phone,
		CurrentBalance: c.CurrentBalance,
		CreatedAt:      c.CreatedAt,
	}
}

func toTransactionDTO(tx *domain.CreditTransaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:            tx.ID,
		CustomerID:    tx.CustomerID,
		Amount:        tx.Amount,
		Type:          tx.Type,
		Description:   tx.Description,
		ReferenceID:   tx.ReferenceID,
		StaffUsername: tx.StaffUsername,
		Timestamp:     tx.Timestamp,
	}
}

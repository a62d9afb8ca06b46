package dto

import "time"

type CreateCustomerRequestDTO struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type UpdateCustomerRequestDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type CustomerResponseDTO struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Address        string    `json:"address,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	CurrentBalance float64   `json:"current_balance"`
	CreatedAt      time.Time `json:"created_at"`
}

type CustomerDetailResponseDTO struct {
	CustomerResponseDTO
	Transactions []TransactionResponseDTO `json:"transactions"`
}

// CreateTransactionRequestDTO carries no staff identity on purpose; the
// spoofable field simply does not exist on the request surface.
type CreateTransactionRequestDTO struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type" example:"credit"`
	Description string  `json:"description,omitempty"`
	ReferenceID string  `json:"reference_id,omitempty"`
}

type TransactionResponseDTO struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Description   string    `json:"description,omitempty"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	StaffUsername string    `json:"staff_username"`
	Timestamp     time.Time `json:"timestamp"`
}

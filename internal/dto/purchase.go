package dto

import "time"

type PurchaseItemDTO struct {
	Category   string  `json:"category" example:"Kleider"`
	PriceLevel string  `json:"price_level" example:"Mittel"`
	Condition  string  `json:"condition" example:"Kaum benutzt"`
	Relevance  string  `json:"relevance" example:"Wichtig"`
	Price      float64 `json:"price" example:"12.5"`
}

// CreatePurchaseRequestDTO deliberately has no staff_username field:
// the acting staff member comes from the verified token only.
type CreatePurchaseRequestDTO struct {
	Items            []PurchaseItemDTO `json:"items"`
	CreditCustomerID string            `json:"credit_customer_id,omitempty"`
}

type PurchaseItemResponseDTO struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	PriceLevel string  `json:"price_level"`
	Condition  string  `json:"condition"`
	Relevance  string  `json:"relevance"`
	Price      float64 `json:"price"`
}

type PurchaseResponseDTO struct {
	ID                 string                    `json:"id"`
	Items              []PurchaseItemResponseDTO `json:"items"`
	Total              float64                   `json:"total"`
	Timestamp          time.Time                 `json:"timestamp"`
	StaffUsername      string                    `json:"staff_username"`
	CreditCustomerID   string                    `json:"credit_customer_id,omitempty"`
	CreditCustomerName string                    `json:"credit_customer_name,omitempty"`
}

type DeleteAllPurchasesResponseDTO struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type PurchaseItem struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	PriceLevel string  `json:"price_level"`
	Condition  string  `json:"condition"`
	Relevance  string  `json:"relevance"`
	Price      float64 `json:"price"`
}

type Purchase struct {
	ID                 string         `db:"id"`
	Items              []PurchaseItem `db:"items"`
	Total              float64        `db:"total"`
	Timestamp          time.Time      `db:"timestamp"`
	StaffUsername      string         `db:"staff_username"`
	CreditCustomerID   string         `db:"credit_customer_id"`
	CreditCustomerName string         `db:"credit_customer_name"`
	Deleted            bool           `db:"deleted"`
	DeletedAt          *time.Time     `db:"deleted_at"`
	DeletedBy          string         `db:"deleted_by"`
}

type Customer struct {
	ID             string    `db:"id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	Address        string    `db:"address"`
	Phone          string    `db:"phone"`
	CurrentBalance float64   `db:"current_balance"`
	CreatedAt      time.Time `db:"created_at"`
}

// DisplayName is the denormalized name snapshot stored on purchases.
func (c *Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}

const (
	TransactionPurchaseCredit = "purchase_credit"
	TransactionPayout         = "payout"
	TransactionManualCredit   = "manual_credit"
	TransactionManualDebit    = "manual_debit"
)

// CreditTransaction is an append-only ledger entry. Positive amounts
// increase what the store owes the customer, negative amounts decrease it.
type CreditTransaction struct {
	ID            string    `db:"id"`
	CustomerID    string    `db:"customer_id"`
	Amount        float64   `db:"amount"`
	Type          string    `db:"type"`
	Description   string    `db:"description"`
	ReferenceID   string    `db:"reference_id"`
	StaffUsername string    `db:"staff_username"`
	Timestamp     time.Time `db:"timestamp"`
}

type PriceMatrixEntry struct {
	Category   string   `db:"category"`
	PriceLevel string   `db:"price_level"`
	Condition  string   `db:"condition"`
	Relevance  string   `db:"relevance"`
	FixedPrice *float64 `db:"fixed_price"`
}

type CustomCategory struct {
	Name  string `db:"name"`
	Image string `db:"image"`
}

type DailyStat struct {
	Date  string  `db:"date"`
	Count int     `db:"count"`
	Total float64 `db:"total"`
}

type MonthlyStat struct {
	Month string  `db:"month"`
	Count int     `db:"count"`
	Total float64 `db:"total"`
}

type TodayStats struct {
	Date           string  `db:"date"`
	TotalPurchases int     `db:"total_purchases"`
	TotalAmount    float64 `db:"total_amount"`
	TotalItems     int     `db:"total_items"`
}

type GeneralSettings struct {
	DangerZonePassword string         `json:"danger_zone_password,omitempty"`
	Colors             SettingsColors `json:"colors"`
}

type SettingsColors struct {
	Luxus    string `json:"luxus"`
	Teuer    string `json:"teuer"`
	Mittel   string `json:"mittel"`
	Guenstig string `json:"guenstig"`
}

type ReceiptSettings struct {
	StoreName    string   `json:"store_name"`
	AddressLines []string `json:"address_lines"`
	Footer       string   `json:"footer"`
	Logo         string   `json:"logo,omitempty"`
}

func DefaultGeneralSettings() *GeneralSettings {
	return &GeneralSettings{
		Colors: SettingsColors{
			Luxus:    "#FEF3C7",
			Teuer:    "#DBEAFE",
			Mittel:   "#D1FAE5",
			Guenstig: "#F1F5F9",
		},
	}
}

func DefaultReceiptSettings() *ReceiptSettings {
	return &ReceiptSettings{
		StoreName: "ReWear",
	}
}

package domain

import "time"

type AccountCategory string

const (
	CategoryAssets      AccountCategory = "assets"
	CategoryLiabilities AccountCategory = "liabilities"
	CategoryEquity      AccountCategory = "equity"
	CategoryIncome      AccountCategory = "income"
	CategoryExpenses    AccountCategory = "expenses"
)

// DebitPositive reports whether debits increase the balance of this category.
func (c AccountCategory) DebitPositive() bool {
	return c == CategoryAssets || c == CategoryExpenses
}

type Account struct {
	ID        string          `db:"id"`
	TenantID  string          `db:"tenant_id"`
	Name      string          `db:"name"`
	Category  AccountCategory `db:"category"`
	Balance   float64         `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

type LedgerTransaction struct {
	ID            string    `db:"id"`
	TenantID      string    `db:"tenant_id"`
	Description   string    `db:"description"`
	Date          time.Time `db:"date"`
	Amount        float64   `db:"amount"`
	Posted        bool      `db:"posted"`
	ReferenceType string    `db:"reference_type"`
	ReferenceID   string    `db:"reference_id"`
}

// LedgerEntry is one leg of a transaction. Exactly one of Debit and Credit
// is non-zero; within a transaction total debits equal total credits.
type LedgerEntry struct {
	ID            int     `db:"id"`
	TransactionID string  `db:"transaction_id"`
	AccountID     string  `db:"account_id"`
	Debit         float64 `db:"debit"`
	Credit        float64 `db:"credit"`
	Description   string  `db:"description"`
}

type DrawerStatus string

const (
	DrawerOpen   DrawerStatus = "open"
	DrawerClosed DrawerStatus = "closed"
)

type CashDrawer struct {
	ID              string       `db:"id"`
	TenantID        string       `db:"tenant_id"`
	UserID          string       `db:"user_id"`
	LedgerAccountID string       `db:"ledger_account_id"`
	Balance         float64      `db:"balance"`
	Status          DrawerStatus `db:"status"`
	CreatedAt       time.Time    `db:"created_at"`
}

type TransferType string

const (
	TransferCashDrawer    TransferType = "cash_drawer"
	TransferUserToUser    TransferType = "user_to_user"
	TransferPaymentMethod TransferType = "payment_method"
)

func (t TransferType) Valid() bool {
	switch t {
	case TransferCashDrawer, TransferUserToUser, TransferPaymentMethod:
		return true
	}
	return false
}

type TransferStatus string

const (
	StatusPending   TransferStatus = "pending"
	StatusApproved  TransferStatus = "approved"
	StatusRejected  TransferStatus = "rejected"
	StatusCancelled TransferStatus = "cancelled"
	StatusCompleted TransferStatus = "completed"
)

// Terminal reports whether no further transition is allowed from the status.
func (s TransferStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

type TransferRequest struct {
	ID              string         `db:"id"`
	TenantID        string         `db:"tenant_id"`
	Type            TransferType   `db:"type"`
	Amount          float64        `db:"amount"`
	Currency        string         `db:"currency"`
	RequestedBy     string         `db:"requested_by"`
	CounterpartyID  string         `db:"counterparty_id"`
	SourceDrawerID  string         `db:"source_drawer_id"`
	DestDrawerID    string         `db:"dest_drawer_id"`
	DestAccountID   string         `db:"dest_account_id"`
	Reason          string         `db:"reason"`
	Notes           string         `db:"notes"`
	ReferenceNumber string         `db:"reference_number"`
	Status          TransferStatus `db:"status"`
	RequestedAt     time.Time      `db:"requested_at"`
	RespondedAt     *time.Time     `db:"responded_at"`
	RespondedBy     string         `db:"responded_by"`
	CompletedAt     *time.Time     `db:"completed_at"`
}

// TransferFilter narrows List results. Zero values mean "any".
type TransferFilter struct {
	Status TransferStatus
	Type   TransferType
	Limit  int
}

// ReconcileReport is the result of one accounting consistency check.
type ReconcileReport struct {
	TenantID         string  `json:"tenant_id"`
	AssetsTotal      float64 `json:"assets_total"`
	LiabilitiesTotal float64 `json:"liabilities_total"`
	EquityTotal      float64 `json:"equity_total"`
	RevenueTotal     float64 `json:"revenue_total"`
	ExpensesTotal    float64 `json:"expenses_total"`
	JournalBalance   float64 `json:"journal_balance"`
	EquationBalance  float64 `json:"equation_balance"`
	Balanced         bool    `json:"balanced"`
}

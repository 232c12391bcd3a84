package dto

import "time"

type CreateTransferRequestDTO struct {
	Type           string  `json:"type" example:"payment_method"`
	Amount         float64 `json:"amount" example:"400"`
	Currency       string  `json:"currency" example:"USD"`
	SourceDrawerID string  `json:"source_drawer_id,omitempty" example:"5f0c1b42-6f3a-4f24-9d2e-2a1f3f8f2c11"`
	DestDrawerID   string  `json:"dest_drawer_id,omitempty"`
	SourceUserID   string  `json:"source_user_id,omitempty"`
	DestUserID     string  `json:"dest_user_id,omitempty"`
	DestAccountID  string  `json:"dest_account_id,omitempty"`
	ApproverID     string  `json:"approver_id,omitempty"`
	Reason         string  `json:"reason,omitempty" example:"end of shift settlement"`
}

type RespondTransferRequestDTO struct {
	Decision string `json:"decision" example:"approved"`
	Notes    string `json:"notes,omitempty"`
}

type TransferResponseDTO struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	RequestedBy     string     `json:"requested_by"`
	CounterpartyID  string     `json:"counterparty_id"`
	SourceDrawerID  string     `json:"source_drawer_id,omitempty"`
	DestDrawerID    string     `json:"dest_drawer_id,omitempty"`
	DestAccountID   string     `json:"dest_account_id,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	ReferenceNumber string     `json:"reference_number"`
	Status          string     `json:"status"`
	RequestedAt     time.Time  `json:"requested_at"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	RespondedBy     string     `json:"responded_by,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type DrawerResponseDTO struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	LedgerAccountID string    `json:"ledger_account_id"`
	Balance         float64   `json:"balance"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single dated, categorized money movement owned by
// one user. Amounts are stored as positive magnitudes; the category alone
// encodes direction, with the income sentinel marking inflow.
type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Date        Date            `json:"date" db:"date"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Category    string          `json:"category" db:"category"`
	IsRecurring bool            `json:"is_recurring" db:"is_recurring"`
	CreatedAt   time.Time       `json:"-" db:"created_at"`
	UpdatedAt   time.Time       `json:"-" db:"updated_at"`
}

// CreateTransactionRequest is the input shape for creating a transaction.
type CreateTransactionRequest struct {
	Date        *Date           `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	IsRecurring bool            `json:"is_recurring"`
}

// UpdateTransactionRequest is the input shape for a partial update. Nil
// fields are left untouched.
type UpdateTransactionRequest struct {
	Date        *Date            `json:"date"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	IsRecurring *bool            `json:"is_recurring"`
}

// TransactionView is the read shape for list responses, with the owning
// user expanded.
type TransactionView struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	User        UserView        `json:"user" db:"user"`
	Date        Date            `json:"date" db:"date"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Category    string          `json:"category" db:"category"`
	IsRecurring bool            `json:"is_recurring" db:"is_recurring"`
}

// TransactionRecord is the reduced shape handed to the report renderer and
// the AI adapters.
type TransactionRecord struct {
	Date        Date            `json:"date" db:"date"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Category    string          `json:"category" db:"category"`
	IsRecurring bool            `json:"is_recurring" db:"is_recurring"`
}

// ExtractedTransaction is a transaction-shaped record produced by receipt
// extraction. It is never persisted; callers submit it through the create
// endpoint to commit it.
type ExtractedTransaction struct {
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// TransactionFilter restricts the visible transaction set. All provided
// predicates combine with logical AND; nil/empty fields impose no
// restriction. A nil OwnerID means the caller may see every user's rows.
type TransactionFilter struct {
	OwnerID    *uuid.UUID
	Category   string
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
	DateAfter  *Date
	DateBefore *Date
	Search     string
	Ordering   string
}

// TransactionTotals is the aggregate block computed over an entire filtered
// set, independent of pagination.
type TransactionTotals struct {
	TotalIncome       decimal.Decimal `json:"total_income" db:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses" db:"total_expenses"`
	NetAmount         decimal.Decimal `json:"net_amount" db:"-"`
	TotalTransactions int             `json:"total_transactions" db:"transaction_count"`
}

// TransactionPage is one page of a filtered transaction listing together
// with the totals over the whole filtered set.
type TransactionPage struct {
	Count       int               `json:"count"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
	PageSize    int               `json:"page_size"`
	Next        *string           `json:"next"`
	Previous    *string           `json:"previous"`
	Results     []TransactionView `json:"results"`
	Totals      TransactionTotals `json:"totals"`
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID  uuid.UUID
	IsStaff bool
}

package rules

import "github.com/shopspring/decimal"

// AccountRef addresses a single account. Used by lookup-by-account,
// with-transactions, summary-by-account, delete-account and transaction-count.
type AccountRef struct {
	AccountID int64 `json:"accountId" validate:"gt=0"`
}

// TransactionRef addresses a single ledger transaction.
type TransactionRef struct {
	TransactionID int64 `json:"transactionId" validate:"gt=0"`
}

// Movement is a deposit into or withdrawal from one account.
type Movement struct {
	AccountID int64           `json:"accountId" validate:"gt=0"`
	Amount    decimal.Decimal `json:"amount"    validate:"positive_decimal"`
}

// Transfer moves money between two accounts.
type Transfer struct {
	FromAccountID int64           `json:"fromAccountId" validate:"gt=0"`
	ToAccountID   int64           `json:"toAccountId"   validate:"gt=0"`
	Amount        decimal.Decimal `json:"amount"        validate:"positive_decimal"`
}

// NewClerk provisions a clerk login.
type NewClerk struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NewAccount opens an account with an opening balance.
type NewAccount struct {
	Name    string          `json:"name"    validate:"required"`
	Balance decimal.Decimal `json:"balance" validate:"nonnegative_decimal"`
	Email   string          `json:"email"   validate:"required"`
	Phone   string          `json:"phone"   validate:"required"`
}

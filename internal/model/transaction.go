package model

import "github.com/shopspring/decimal"

// TransactionType distinguishes income from expense entries.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a single ledger entry. Entries are immutable once created
// except through explicit edit or delete; invoice payments create and remove
// them as a side effect of the paid status.
type Transaction struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     Date            `json:"date"`
	Type     TransactionType `json:"type"`
	Notes    string          `json:"notes,omitempty"`
}

// DefaultCategories is the built-in category list; user-entered categories
// outside it accumulate in the snapshot's customCategories collection.
var DefaultCategories = []string{
	"Sales",
	"Services",
	"Client Payments",
	"Software",
	"Office Supplies",
	"Travel",
	"Meals",
	"Marketing",
	"Professional Services",
	"Insurance",
	"Rent",
	"Utilities",
	"Other",
}

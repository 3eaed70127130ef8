package entities

import "slices"

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

func (t TransactionType) Valid() bool { return t == Income || t == Expense }

var (
	ExpenseCategories = []string{"seeds", "fertilizer", "equipment", "fuel", "labor", "irrigation", "pest_control", "maintenance", "other"}
	IncomeCategories  = []string{"crop_sales", "livestock", "subsidies", "grants", "other"}
)

// Categories returns the category set allowed for a transaction type.
func (t TransactionType) Categories() []string {
	switch t {
	case Income:
		return IncomeCategories
	case Expense:
		return ExpenseCategories
	}
	return nil
}

// AllowsCategory reports whether c belongs to the type's category set.
func (t TransactionType) AllowsCategory(c string) bool { return slices.Contains(t.Categories(), c) }

type Transaction struct {
	ID          int             `json:"Id"`
	FarmID      int             `json:"farmId"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

type TransactionForm struct {
	FarmID      FormValue       `json:"farmId"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      FormValue       `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

func (t Transaction) Form() TransactionForm {
	return TransactionForm{
		FarmID:      IntValue(t.FarmID),
		Type:        t.Type,
		Category:    t.Category,
		Amount:      FloatValue(t.Amount),
		Date:        t.Date,
		Description: t.Description,
	}
}

// Signed is the amount with income positive and expenses negative.
func (t Transaction) Signed() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}

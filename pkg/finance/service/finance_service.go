package service

import (
	"context"
	"io"

	"farmdash/entities"
	"farmdash/pkg/page"
)

type Filter struct {
	Search   string                   `query:"search"`
	Type     entities.TransactionType `query:"type"`
	Category string                   `query:"category"`
}

type Row struct {
	entities.Transaction
	FarmName string `json:"farmName"`
}

// Stats are computed over the calendar month and year of "now".
type Stats struct {
	MonthIncome   float64 `json:"monthIncome"`
	MonthExpenses float64 `json:"monthExpenses"`
	MonthProfit   float64 `json:"monthProfit"`
	YearProfit    float64 `json:"yearProfit"`
}

type View struct {
	Stats           Stats             `json:"stats"`
	Transactions    []Row             `json:"transactions"`
	Shown           int               `json:"shown"`
	Total           int               `json:"total"`
	FarmOptions     []entities.Option `json:"farmOptions"`
	TypeOptions     []entities.Option `json:"typeOptions"`
	CategoryOptions []entities.Option `json:"categoryOptions"`
}

type FinanceService interface {
	// Load (re)reads the working set; every page read calls it.
	Load(ctx context.Context) error
	Status() page.Status
	// View filters and orders transactions by date, newest first.
	View(f Filter) View
	// Export writes the filtered view as an XLSX workbook.
	Export(w io.Writer, f Filter) error
	SubmitCreate(ctx context.Context, form entities.TransactionForm) (entities.Transaction, error)
	SubmitUpdate(ctx context.Context, id int, form entities.TransactionForm) (entities.Transaction, error)
	Remove(ctx context.Context, id int, confirmed bool) error
}

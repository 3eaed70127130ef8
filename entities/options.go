package entities

import (
	"strings"
)

// Option is one entry of a select input.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var SizeUnitOptions = []Option{
	{string(Acres), "Acres"},
	{string(Hectares), "Hectares"},
	{string(SquareFeet), "Square Feet"},
	{string(SquareMeters), "Square Meters"},
}

var CropTypeOptions = []Option{
	{string(Corn), "Corn"},
	{string(Wheat), "Wheat"},
	{string(Soybeans), "Soybeans"},
	{string(Rice), "Rice"},
	{string(Tomatoes), "Tomatoes"},
	{string(Potatoes), "Potatoes"},
	{string(Carrots), "Carrots"},
	{string(Lettuce), "Lettuce"},
}

var CropStatusOptions = []Option{
	{string(Planted), "Planted"},
	{string(Growing), "Growing"},
	{string(Ready), "Ready for Harvest"},
	{string(Harvested), "Harvested"},
}

var PriorityOptions = []Option{
	{string(High), "High Priority"},
	{string(Medium), "Medium Priority"},
	{string(Low), "Low Priority"},
}

var TaskStatusOptions = []Option{
	{"pending", "Pending"},
	{"completed", "Completed"},
}

var TransactionTypeOptions = []Option{
	{string(Expense), "Expense"},
	{string(Income), "Income"},
}

// CategoryOptions lists the categories of one transaction type.
func CategoryOptions(t TransactionType) []Option {
	cats := t.Categories()
	out := make([]Option, 0, len(cats))
	for _, c := range cats {
		out = append(out, Option{Value: c, Label: Humanize(c)})
	}
	return out
}

// Humanize turns "pest_control" into "Pest Control".
func Humanize(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

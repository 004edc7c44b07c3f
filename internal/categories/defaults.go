package categories

import "github.com/cleared-dev/spendwise/internal/model"

// Default category labels offered when the config does not list any.
const (
	Food        model.Category = "Food"
	Travel      model.Category = "Travel"
	Shopping    model.Category = "Shopping"
	CurrentBill model.Category = "current Bill"
	PhoneBill   model.Category = "phone bill"
	OtherBill   model.Category = "Other bill"
	Other       model.Category = "Other"
)

// Defaults returns the built-in category list in display order.
func Defaults() []model.Category {
	return []model.Category{Food, Travel, Shopping, CurrentBill, PhoneBill, OtherBill, Other}
}

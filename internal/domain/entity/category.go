package entity

// Category classifies an expense
type Category string

// Categories accepted by the store
const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryOther         Category = "Other"
)

// CategoryAll is the filter sentinel meaning "no category restriction"
const CategoryAll = "All"

// Categories lists every category in display order
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory maps unrecognized input to Other
func NormalizeCategory(value string) Category {
	c := Category(value)
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

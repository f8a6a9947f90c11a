// Package catalog holds the fixed vegetable taxonomy used to build the
// add-listing form and to filter market searches. It is loaded once at
// startup and never mutated; the database never stores it.
package catalog

type Category struct {
	Name       string
	Vegetables []string
}

var categories = []Category{
	{Name: "Fruiting Vegetables", Vegetables: []string{"Tomato", "Brinjal", "Capsicum", "Chilli"}},
	{Name: "Root Vegetables", Vegetables: []string{"Potato", "Onion", "Carrot", "Beetroot"}},
	{Name: "Leafy Greens", Vegetables: []string{"Spinach", "Coriander", "Mint"}},
}

// Categories returns the category names in declaration order.
func Categories() []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

// Grouped returns a copy of the full taxonomy in declaration order.
func Grouped() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		veggies := make([]string, len(c.Vegetables))
		copy(veggies, c.Vegetables)
		out[i] = Category{Name: c.Name, Vegetables: veggies}
	}
	return out
}

// Vegetables returns the vegetable names of a category, in order.
func Vegetables(category string) ([]string, bool) {
	for _, c := range categories {
		if c.Name == category {
			veggies := make([]string, len(c.Vegetables))
			copy(veggies, c.Vegetables)
			return veggies, true
		}
	}
	return nil, false
}

// All returns every vegetable name, category order first, in-category order second.
func All() []string {
	var names []string
	for _, c := range categories {
		names = append(names, c.Vegetables...)
	}
	return names
}

// IsCategory reports whether name is a known category.
func IsCategory(name string) bool {
	_, ok := Vegetables(name)
	return ok
}

// IsVegetable reports whether name appears in any category.
func IsVegetable(name string) bool {
	for _, c := range categories {
		for _, v := range c.Vegetables {
			if v == name {
				return true
			}
		}
	}
	return false
}

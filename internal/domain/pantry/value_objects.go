package pantry

// Category groups pantry items by where they are stored.
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryDairy     Category = "dairy"
	CategoryMeat      Category = "meat"
	CategorySeafood   Category = "seafood"
	CategoryGrains    Category = "grains"
	CategorySpices    Category = "spices"
	CategoryCanned    Category = "canned"
	CategoryFrozen    Category = "frozen"
	CategoryBeverages Category = "beverages"
	CategoryOther     Category = "other"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryProduce, CategoryDairy, CategoryMeat, CategorySeafood,
		CategoryGrains, CategorySpices, CategoryCanned, CategoryFrozen,
		CategoryBeverages, CategoryOther:
		return true
	}
	return false
}

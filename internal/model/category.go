package model

// FoodCategory is one of the eight semantic food groups a panel item
// belongs to. The set is closed; every configured food item must map to
// exactly one category.
type FoodCategory string

const (
	CategoryMeat       FoodCategory = "meat"
	CategoryEggsDairy  FoodCategory = "eggs_dairy"
	CategorySeafood    FoodCategory = "seafood"
	CategoryGrains     FoodCategory = "grains"
	CategoryFruits     FoodCategory = "fruits"
	CategoryVegetables FoodCategory = "vegetables"
	CategoryNuts       FoodCategory = "nuts"
	CategorySeasonings FoodCategory = "seasonings"
)

// AllCategories lists the categories in canonical report order. Templates
// iterate this order when rendering grouped sections.
var AllCategories = []FoodCategory{
	CategoryMeat,
	CategoryEggsDairy,
	CategorySeafood,
	CategoryGrains,
	CategoryFruits,
	CategoryVegetables,
	CategoryNuts,
	CategorySeasonings,
}

var categoryLabels = map[FoodCategory]string{
	CategoryMeat:       "Meat",
	CategoryEggsDairy:  "Eggs & Dairy",
	CategorySeafood:    "Seafood",
	CategoryGrains:     "Grains",
	CategoryFruits:     "Fruits",
	CategoryVegetables: "Vegetables",
	CategoryNuts:       "Nuts & Seeds",
	CategorySeasonings: "Seasonings",
}

// Label returns the section heading used in rendered reports.
func (c FoodCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is one of the eight known categories.
func (c FoodCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

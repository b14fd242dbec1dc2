package schema

import "github.com/gyeh/igreport/internal/model"

// foodCategories is the authoritative food → category table for every item
// any panel can reference. Panels are defined as ordered name lists below;
// registry construction fails if a panel names a food missing here.
var foodCategories = map[string]model.FoodCategory{}

func init() {
	add := func(category model.FoodCategory, names ...string) {
		for _, n := range names {
			foodCategories[n] = category
		}
	}

	add(model.CategoryMeat,
		"Turkey", "Chicken", "Beef", "Lamb", "Pork")

	add(model.CategoryEggsDairy,
		"Cottage Cheese", "Cheddar Cheese", "Casein", "Yogurt", "Whole Egg",
		"Egg White", "Egg Yolk", "Goat Milk", "Cow Milk",
		"Alpha-Lactalbumin", "Beta-Lactoglobulin")

	add(model.CategorySeafood,
		"Eel", "Cod", "Salmon", "Tuna", "Grass Carp", "Trout", "Hairtail",
		"Sardine", "Lobster", "Shrimp", "Crab", "Cuttlefish", "Scallop",
		"Oyster", "Clam")

	add(model.CategoryGrains,
		"Barley", "Rice", "Millet", "Wheat", "Rye", "Oat", "Buckwheat",
		"Corn", "Malt")

	add(model.CategoryFruits,
		"Banana", "Grape", "Lemon", "Strawberry", "Pomelo", "Pineapple",
		"Durian", "Watermelon", "Peach", "Mango", "Olive", "Apple",
		"Blueberry", "Orange", "Cantaloupe")

	add(model.CategoryVegetables,
		"Soybean", "Green Bean", "Pea", "Spinach", "Bok Choy", "Lettuce",
		"Cabbage", "Cauliflower", "Celery", "Broccoli", "Tomato", "Carrot",
		"Cucumber", "Garlic", "Scallion", "Cilantro", "Red Pepper",
		"Green Pepper", "Onion", "Ginger", "Mushroom", "Sweet Potato",
		"Potato", "Pumpkin", "Eggplant")

	add(model.CategoryNuts,
		"Peanut", "Sunflower Seed", "Almond", "Cashew", "Hazelnut",
		"Black Walnut", "Sesame")

	add(model.CategorySeasonings,
		"Cinnamon", "Black Tea", "Mustard", "Honey", "Butter", "Yeast",
		"Coffee", "Chocolate", "Cane Sugar")
}

// panel32 covers the most common allergens across all eight categories.
// panel32 ⊂ panel64 ⊂ panel96; column order is category order.
var panel32 = []string{
	// Meat
	"Chicken", "Beef", "Pork",
	// Eggs & dairy
	"Whole Egg", "Egg White", "Egg Yolk", "Cow Milk", "Cheddar Cheese",
	// Seafood
	"Cod", "Salmon", "Shrimp", "Crab", "Clam",
	// Grains
	"Wheat", "Rice", "Corn", "Oat",
	// Fruits
	"Apple", "Banana", "Orange", "Strawberry",
	// Vegetables
	"Soybean", "Tomato", "Carrot", "Potato", "Celery", "Mushroom",
	// Nuts & seeds
	"Peanut", "Almond", "Sesame",
	// Seasonings
	"Yeast", "Honey",
}

var panel64 = []string{
	// Meat
	"Turkey", "Chicken", "Beef", "Lamb", "Pork",
	// Eggs & dairy
	"Cheddar Cheese", "Casein", "Yogurt", "Whole Egg", "Egg White",
	"Egg Yolk", "Goat Milk", "Cow Milk",
	// Seafood
	"Cod", "Salmon", "Tuna", "Sardine", "Lobster", "Shrimp", "Crab",
	"Scallop", "Oyster", "Clam",
	// Grains
	"Barley", "Rice", "Wheat", "Rye", "Oat", "Buckwheat", "Corn",
	// Fruits
	"Banana", "Grape", "Lemon", "Strawberry", "Pineapple", "Peach",
	"Mango", "Apple", "Orange",
	// Vegetables
	"Soybean", "Spinach", "Cabbage", "Cauliflower", "Celery", "Broccoli",
	"Tomato", "Carrot", "Cucumber", "Garlic", "Onion", "Ginger",
	"Mushroom", "Potato",
	// Nuts & seeds
	"Peanut", "Sunflower Seed", "Almond", "Cashew", "Hazelnut", "Sesame",
	// Seasonings
	"Mustard", "Honey", "Yeast", "Coffee", "Chocolate",
}

var panel96 = []string{
	// Meat
	"Turkey", "Chicken", "Beef", "Lamb", "Pork",
	// Eggs & dairy
	"Cottage Cheese", "Cheddar Cheese", "Casein", "Yogurt", "Whole Egg",
	"Egg White", "Egg Yolk", "Goat Milk", "Cow Milk",
	"Alpha-Lactalbumin", "Beta-Lactoglobulin",
	// Seafood
	"Eel", "Cod", "Salmon", "Tuna", "Grass Carp", "Trout", "Hairtail",
	"Sardine", "Lobster", "Shrimp", "Crab", "Cuttlefish", "Scallop",
	"Oyster", "Clam",
	// Grains
	"Barley", "Rice", "Millet", "Wheat", "Rye", "Oat", "Buckwheat",
	"Corn", "Malt",
	// Fruits
	"Banana", "Grape", "Lemon", "Strawberry", "Pomelo", "Pineapple",
	"Durian", "Watermelon", "Peach", "Mango", "Olive", "Apple",
	"Blueberry", "Orange", "Cantaloupe",
	// Vegetables
	"Soybean", "Green Bean", "Pea", "Spinach", "Bok Choy", "Lettuce",
	"Cabbage", "Cauliflower", "Celery", "Broccoli", "Tomato", "Carrot",
	"Cucumber", "Garlic", "Scallion", "Cilantro", "Red Pepper",
	"Green Pepper", "Onion", "Ginger", "Mushroom", "Sweet Potato",
	"Potato", "Pumpkin", "Eggplant",
	// Nuts & seeds
	"Peanut", "Sunflower Seed", "Almond", "Cashew", "Hazelnut",
	"Black Walnut", "Sesame",
	// Seasonings
	"Cinnamon", "Black Tea", "Mustard", "Honey", "Butter", "Yeast",
	"Coffee", "Chocolate", "Cane Sugar",
}

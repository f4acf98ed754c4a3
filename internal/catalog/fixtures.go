package catalog

import (
	"github.com/restu-food/api/internal/enum"
	"github.com/shopspring/decimal"
)

// DefaultItems is the stock menu the server is seeded with. Prices come in
// as strings so currency values stay exact.
func DefaultItems() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Classic Cheeseburger",
			Description: "Juicy beef patty with cheddar cheese, lettuce, tomato, and special sauce",
			Price:       decimal.RequireFromString("10.99"),
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=1000&q=80",
			Rating:      4.5,
			Category:    enum.CategoryBurgers,
			IsPopular:   true,
			Tags:        []string{enum.TagBeef},
		},
		{
			ID:          "2",
			Name:        "Veggie Burger",
			Description: "Plant-based patty with avocado, sprouts, tomato, and vegan mayo",
			Price:       decimal.RequireFromString("12.99"),
			Image:       "https://images.unsplash.com/photo-1520072959219-c595dc870360?w=1000&q=80",
			Rating:      4.3,
			Category:    enum.CategoryBurgers,
			Tags:        []string{enum.TagVegetarian, enum.TagVegan},
		},
		{
			ID:          "3",
			Name:        "Margherita Pizza",
			Description: "Classic pizza with tomato sauce, fresh mozzarella, and basil",
			Price:       decimal.RequireFromString("14.99"),
			Image:       "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=1000&q=80",
			Rating:      4.7,
			Category:    enum.CategoryPizza,
			IsPopular:   true,
			Tags:        []string{enum.TagVegetarian},
		},
		{
			ID:          "4",
			Name:        "Pepperoni Pizza",
			Description: "Classic pizza topped with spicy pepperoni slices",
			Price:       decimal.RequireFromString("15.99"),
			Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=1000&q=80",
			Rating:      4.6,
			Category:    enum.CategoryPizza,
			IsPopular:   true,
			Tags:        []string{enum.TagMeat},
		},
		{
			ID:          "5",
			Name:        "Fettuccine Alfredo",
			Description: "Creamy alfredo sauce with fettuccine pasta and parmesan",
			Price:       decimal.RequireFromString("13.99"),
			Image:       "https://images.unsplash.com/photo-1645112411341-6c4fd023882c?w=1000&q=80",
			Rating:      4.4,
			Category:    enum.CategoryPasta,
			Tags:        []string{enum.TagVegetarian},
		},
		{
			ID:          "6",
			Name:        "Spaghetti Bolognese",
			Description: "Spaghetti with rich meat sauce and parmesan cheese",
			Price:       decimal.RequireFromString("14.99"),
			Image:       "https://images.unsplash.com/photo-1622973536968-3ead9e780960?w=1000&q=80",
			Rating:      4.5,
			Category:    enum.CategoryPasta,
			IsPopular:   true,
			Tags:        []string{enum.TagMeat},
		},
		{
			ID:          "7",
			Name:        "Caesar Salad",
			Description: "Romaine lettuce, croutons, parmesan cheese with caesar dressing",
			Price:       decimal.RequireFromString("9.99"),
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=1000&q=80",
			Rating:      4.2,
			Category:    enum.CategorySalads,
			Tags:        []string{enum.TagVegetarian},
		},
		{
			ID:          "8",
			Name:        "Greek Salad",
			Description: "Cucumber, tomato, olives, feta cheese with olive oil dressing",
			Price:       decimal.RequireFromString("10.99"),
			Image:       "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=1000&q=80",
			Rating:      4.3,
			Category:    enum.CategorySalads,
			Tags:        []string{enum.TagVegetarian, enum.TagGlutenFree},
		},
		{
			ID:          "9",
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten chocolate center",
			Price:       decimal.RequireFromString("7.99"),
			Image:       "https://images.unsplash.com/photo-1617305855058-336d24456869?w=1000&q=80",
			Rating:      4.8,
			Category:    enum.CategoryDesserts,
			IsPopular:   true,
			Tags:        []string{enum.TagVegetarian},
		},
		{
			ID:          "10",
			Name:        "Cheesecake",
			Description: "Creamy New York style cheesecake with berry compote",
			Price:       decimal.RequireFromString("8.99"),
			Image:       "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?w=1000&q=80",
			Rating:      4.7,
			Category:    enum.CategoryDesserts,
			IsPopular:   true,
			Tags:        []string{enum.TagVegetarian},
		},
		{
			ID:          "11",
			Name:        "Iced Coffee",
			Description: "Cold brewed coffee served over ice with cream",
			Price:       decimal.RequireFromString("4.99"),
			Image:       "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?w=1000&q=80",
			Rating:      4.4,
			Category:    enum.CategoryDrinks,
			Tags:        []string{enum.TagVegetarian, enum.TagVegan, enum.TagGlutenFree},
		},
		{
			ID:          "12",
			Name:        "Strawberry Smoothie",
			Description: "Fresh strawberries blended with yogurt and honey",
			Price:       decimal.RequireFromString("5.99"),
			Image:       "https://images.unsplash.com/photo-1553530666-ba11a90bb0ae?w=1000&q=80",
			Rating:      4.6,
			Category:    enum.CategoryDrinks,
			Tags:        []string{enum.TagVegetarian, enum.TagGlutenFree},
		},
	}
}

// DefaultCategories lists the menu tabs in display order.
func DefaultCategories() []Category {
	return []Category{
		{ID: enum.CategoryAll, Name: "All Items"},
		{ID: enum.CategoryBurgers, Name: "Burgers"},
		{ID: enum.CategoryPizza, Name: "Pizza"},
		{ID: enum.CategoryPasta, Name: "Pasta"},
		{ID: enum.CategorySalads, Name: "Salads"},
		{ID: enum.CategoryDesserts, Name: "Desserts"},
		{ID: enum.CategoryDrinks, Name: "Drinks"},
	}
}

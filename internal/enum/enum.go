package enum

// ── Order status timeline (ordered, forward-only) ──

const (
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusOnTheWay  = "on-the-way"
	OrderStatusDelivered = "delivered"
)

// ── Menu ──

const (
	CategoryAll      = "all"
	CategoryBurgers  = "burgers"
	CategoryPizza    = "pizza"
	CategoryPasta    = "pasta"
	CategorySalads   = "salads"
	CategoryDesserts = "desserts"
	CategoryDrinks   = "drinks"
)

const (
	TagVegetarian = "vegetarian"
	TagVegan      = "vegan"
	TagGlutenFree = "gluten-free"
	TagDairyFree  = "dairy-free"
	TagBeef       = "beef"
	TagMeat       = "meat"
)

const (
	SortPopular   = "popular"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// ── Checkout ──

const (
	FulfillmentDelivery = "delivery"
	FulfillmentPickup   = "pickup"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

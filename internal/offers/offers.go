package offers

// Offer is a promotional deal with its promo code. Offers are display-only
// fixtures; redeeming a code at checkout is not implemented.
type Offer struct {
	ID          string
	Title       string
	Description string
	Code        string
	Discount    string
	ExpiryDate  string
	Image       string
	IsNew       bool
}

// DefaultOffers is the stock set of promotions shown on the offers page.
func DefaultOffers() []Offer {
	return []Offer{
		{
			ID:          "1",
			Title:       "Weekend Special: 20% Off",
			Description: "Enjoy 20% off on all orders above $30 this weekend. Valid for delivery and pickup.",
			Code:        "WEEKEND20",
			Discount:    "20% off",
			ExpiryDate:  "Sunday, 11:59 PM",
			Image:       "https://images.unsplash.com/photo-1565299507177-b0ac66763828?w=800&q=80",
			IsNew:       true,
		},
		{
			ID:          "2",
			Title:       "Free Delivery on First Order",
			Description: "New to Restu? Get free delivery on your first order with no minimum purchase required.",
			Code:        "FIRSTFREE",
			Discount:    "Free Delivery",
			ExpiryDate:  "No expiration",
			Image:       "https://images.unsplash.com/photo-1526367790999-0150786686a2?w=800&q=80",
		},
		{
			ID:          "3",
			Title:       "Buy One Get One Free",
			Description: "Buy any burger and get a second one free. Perfect for sharing with friends or family.",
			Code:        "BURGERBOGO",
			Discount:    "BOGO",
			ExpiryDate:  "Next Monday, 11:59 PM",
			Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800&q=80",
		},
		{
			ID:          "4",
			Title:       "Family Meal Deal",
			Description: "Order a family meal and get a free dessert. Valid for orders over $50.",
			Code:        "FAMILY50",
			Discount:    "Free Dessert",
			ExpiryDate:  "End of month",
			Image:       "https://images.unsplash.com/photo-1547573854-74d2a71d0826?w=800&q=80",
		},
		{
			ID:          "5",
			Title:       "Lunch Special: 15% Off",
			Description: "Take a break with 15% off all orders between 11 AM and 2 PM, Monday to Friday.",
			Code:        "LUNCH15",
			Discount:    "15% off",
			ExpiryDate:  "Valid weekdays",
			Image:       "https://images.unsplash.com/photo-1600335895229-6e75511892c8?w=800&q=80",
		},
		{
			ID:          "6",
			Title:       "Refer a Friend",
			Description: "Refer a friend and both of you get $10 off your next order. No minimum purchase required.",
			Code:        "REFER10",
			Discount:    "$10 off",
			ExpiryDate:  "No expiration",
			Image:       "https://images.unsplash.com/photo-1517457373958-b7bdd4587205?w=800&q=80",
		},
	}
}

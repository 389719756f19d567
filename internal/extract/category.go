package extract

import "strings"

type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryBills         Category = "Bills"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

type categoryRule struct {
	category Category
	keywords []string
}

// Evaluated in order; first matching rule wins.
var categoryRules = []categoryRule{
	{CategoryFood, []string{"zomato", "swiggy", "burger", "pizza", "chai"}},
	{CategoryTravel, []string{"uber", "ola", "rapido", "fuel", "petrol"}},
	{CategoryBills, []string{"recharge", "jio", "bill", "electricity", "paytm"}},
	{CategoryShopping, []string{"amazon", "flipkart", "myntra", "shop"}},
	{CategoryEntertainment, []string{"netflix", "spotify", "movie"}},
}

// Categorize maps a merchant or description string to a spending category
// by case-insensitive substring match. Independent of the merchant keyword
// table: manual entries and positional captures are categorized the same way.
func Categorize(merchant string) Category {
	name := strings.ToLower(merchant)
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.category
			}
		}
	}
	return CategoryOther
}

// Style is the display treatment for a transaction row: an icon name and its
// tint color. Derived from a broader keyword set than Categorize; both use
// the same priority-first-match policy.
type Style struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type styleRule struct {
	style    Style
	keywords []string
}

var styleRules = []styleRule{
	{Style{"food", "#FF6F61"}, []string{"zomato", "swiggy", "chai", "tea", "coffee", "pizza", "burger", "restaurant", "food"}},
	{Style{"travel", "#4A90E2"}, []string{"uber", "ola", "rapido", "fuel", "petrol", "metro", "auto"}},
	{Style{"bill", "#FFB347"}, []string{"recharge", "jio", "airtel", "vi", "bill", "electricity", "paytm", "upi"}},
	{Style{"shopping", "#6B5B95"}, []string{"amazon", "flipkart", "myntra", "store", "market", "shop"}},
	{Style{"entertainment", "#E91E63"}, []string{"netflix", "spotify", "movie", "cinema"}},
}

var defaultStyle = Style{"money", "#757575"}

// StyleFor picks the display style for a merchant name.
func StyleFor(merchant string) Style {
	name := strings.ToLower(merchant)
	for _, r := range styleRules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.style
			}
		}
	}
	return defaultStyle
}

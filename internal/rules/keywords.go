package rules

import "regexp"

// Keyword sets are matched as substrings of the lower-cased text.
var (
	hoursWords = []string{
		"opening hour", "opening hours", "operating hour", "operating hours",
		"business hour", "business hours", "what time do you open",
		"what time open", "what time close", "closing time", "open time",
	}
	bestWords = []string{
		"best seller", "bestseller", "best sellers", "most popular",
		"top pick", "top picks", "top seller", "signature", "popular",
	}
	recommendWords = []string{
		"suggest", "recommend", "recommendation", "pick one", "choose one",
		"how about", "any good", "what's good",
	}
	paymentWords = []string{
		"payment", "pay", "payment method", "payment methods", "pay method",
		"cash", "card", "visa", "master", "mastercard", "credit card", "debit card",
		"grabpay", "tng", "touch n go", "e-wallet", "ewallet",
	}
	locationWords = []string{"where are you", "location", "address", "parking", "car park"}
	menuWords     = []string{"menu", "drinks", "drink", "milkshake", "milk shake", "shake", "dessert", "coffee", "tea"}
	bookWords     = []string{"book", "booking", "reserve", "reservation"}
)

var (
	// "mush" and "mosh" are common misspellings of "much".
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bprice\b`),
		regexp.MustCompile(`\bcost\b`),
		regexp.MustCompile(`\bhow\s+m[uo]?sh\b`),
		regexp.MustCompile(`\bhow\s+much\b`),
	}
	chefPatterns = []*regexp.Regexp{
		regexp.MustCompile(`chef'?s?\s*(recom+\w*d|recommend(ed|ation)?|choice|pick|special|signature)`),
		regexp.MustCompile(`(recom+\w*d|recommend(ed|ation)?)\s+by\s+chef`),
		regexp.MustCompile(`\bchef\s+recommend`),
	}
	greetPattern = regexp.MustCompile(`\b(hi|hello|hey)\b`)
)

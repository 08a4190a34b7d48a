package reply

// Fixed replies.
const (
	TextEmptyInput        = "Say something 🙂"
	TextMakeReservation   = "Sure, how many people?"
	TextModifyReservation = "Okay, what’s the new time or party size?"
	TextCancelReservation = "Please provide your booking name or phone number to cancel."
	TextGreet             = "Hello! How can I help you today?"
	TextGoodbye           = "Thanks for visiting—see you soon!"
	TextFallback          = "Sorry, I didn’t catch that. Do you want to see our menu or make a booking?"
	TextAskPriceItem      = "Which dish price are you asking for?"
	TextAskDish           = "Which dish are you looking for?"
	TextMenuUpdating      = "Our menu is being updated—try asking for drinks, milkshakes or desserts."

	textPartyCaptured = "Got it, %s people. What time would you like?"
	textConfirmed     = "✅ Reservation confirmed for %s people at %s. Thank you!"
)

// List sizes used by the replies.
const (
	categoryLimit  = 12
	popularLimit   = 5
	bestLimit      = 3
	chefLimit      = 3
	priceListLimit = 8
	similarLimit   = 5
	dishLimit      = 6
)

// Surface forms of the categories the replies special-case.
var (
	milkshakeWords    = []string{"milkshake", "milk shake", "shake"}
	drinkWords        = []string{"drink", "drinks", "coffee", "tea", "beverage"}
	dessertWords      = []string{"dessert", "desserts", "sweet"}
	wantOneWords      = []string{"suggest", "recommend", "recommendation", "pick one", "choose one", "how about"}
	singleChoiceWords = []string{"how about", "this one", "that one"}
	bestWords         = []string{
		"best seller", "bestseller", "best sellers", "best selling",
		"most popular", "top pick", "top picks", "top seller",
		"signature", "popular",
	}
	chefCueWords = []string{"recom", "special", "signature", "choice", "pick"}
	chefTags     = []string{"chef", "signature", "recommended", "special", "best"}
)

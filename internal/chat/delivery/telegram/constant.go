package telegram

const (
	clientIDPrefix = "telegram_"

	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdAlgo  = "/algo"
)

const (
	msgWelcome = "👋 Welcome! Ask me about our menu, prices, opening hours, or say \"book a table\" to make a reservation."
	msgHelp    = "Try:\n• what's on the menu?\n• how much is the latte?\n• any vegan dishes?\n• book a table\n\n/algo — show classifiers\n/algo <id> — switch classifier"
	msgFailed  = "Sorry, something went wrong. Please try again."
)

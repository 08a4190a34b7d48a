package reply

// Signal tells the conversation state machine what the reply asked for.
type Signal int

const (
	SignalNone Signal = iota
	// SignalAwaitPartySize means the reply asked how many people are coming.
	SignalAwaitPartySize
	// SignalAwaitPriceItem means a price was asked for without a resolvable item.
	SignalAwaitPriceItem
)

func (s Signal) String() string {
	switch s {
	case SignalAwaitPartySize:
		return "await_party_size"
	case SignalAwaitPriceItem:
		return "await_price_item"
	default:
		return "none"
	}
}

// Reply is the user-facing text plus its state signal.
type Reply struct {
	Text   string
	Signal Signal
}

// Info is the venue data quoted in informational replies.
type Info struct {
	OpenDays  string
	OpenTime  string
	CloseTime string
	LastOrder string
	Location  string
	Payment   string
	Delivery  string
	Takeaway  string
	// ChefPicks are shown, when present in the catalog, for chef recommendation questions.
	ChefPicks []string
}

// DefaultInfo is used when no restaurant section is configured.
func DefaultInfo() Info {
	return Info{
		OpenDays:  "daily",
		OpenTime:  "10am",
		CloseTime: "10pm",
		LastOrder: "30 minutes before closing",
		Location:  "We’re at PV128, Setapak (above Togather Cafe). Free parking after 6pm.",
		Payment:   "We accept cash, Visa/Master, GrabPay, and TNG eWallet.",
		Delivery:  "Yes, we deliver within 5km. Order via our website or WhatsApp.",
		Takeaway:  "Yes, takeaway is available.",
		ChefPicks: []string{"Honey Butter Fried Chicken", "Spicy Sambal Prawns", "Ayam Masak Merah"},
	}
}

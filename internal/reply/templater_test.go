package reply

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/internal/catalog/catalogtest"
	"restaurant-bot/internal/matcher"
	"restaurant-bot/internal/model"
)

func newTemplater(info Info) *Templater {
	ix := catalogtest.Index()
	return New(ix, matcher.New(ix), info)
}

func TestTemplater_Render(t *testing.T) {
	tp := newTemplater(DefaultInfo())

	tests := []struct {
		name       string
		intent     model.Intent
		text       string
		wantText   string
		wantSignal Signal
	}{
		{"hours", model.IntentOpeningHours, "what are your opening hours", "We’re daily from 10am to 10pm.", SignalNone},
		{"closing", model.IntentOpeningHours, "What's your closing time?", "We close at 10pm. Last order is 30 minutes before closing.", SignalNone},
		{"location", model.IntentLocationParking, "where", DefaultInfo().Location, SignalNone},
		{"payment", model.IntentPaymentMethods, "visa?", DefaultInfo().Payment, SignalNone},
		{"delivery", model.IntentDeliveryInfo, "deliver?", DefaultInfo().Delivery, SignalNone},
		{"takeaway", model.IntentTakeawayInfo, "takeaway?", DefaultInfo().Takeaway, SignalNone},
		{
			"milkshake menu", model.IntentMenuItems, "any milkshake?",
			"Drinks (milkshakes): Chocolate Milkshake (RM11), Strawberry Shake (RM10.9)", SignalNone,
		},
		{
			"drinks menu", model.IntentMenuItems, "drinks please",
			"Drinks: Latte Macchiato (RM9), Chocolate Milkshake (RM11), Americano (RM7.5), Simple Coffee (RM6), Iced Lemon Tea (RM5.5)", SignalNone,
		},
		{
			"popular menu", model.IntentMenuItems, "what's on the menu",
			"Popular now: Honey Butter Fried Chicken (RM18), Latte Macchiato (RM9), Tom Yum Soup (RM12.5), Chocolate Milkshake (RM11), Crème Brûlée (RM13)", SignalNone,
		},
		{"vegan", model.IntentDietaryOptions, "any vegan food", "Vegan dishes: Vegan Curry Puff (RM4.2), Garden Salad (RM14)", SignalNone},
		{"dietary default", model.IntentDietaryOptions, "i have allergies", "We have vegan, vegetarian, spicy, dessert and drinks—any preference?", SignalNone},
		{
			"chef picks", model.IntentDishQuery, "chef's special",
			"Chef’s recommendations today: Honey Butter Fried Chicken (RM18), Spicy Sambal Prawns (RM22)", SignalNone,
		},
		{
			"best drinks", model.IntentDishQuery, "best seller drinks",
			"Best-selling drinks: Latte Macchiato (RM9), Chocolate Milkshake (RM11), Americano (RM7.5)", SignalNone,
		},
		{
			"best overall", model.IntentDishQuery, "most popular",
			"Our best sellers: Honey Butter Fried Chicken (RM18), Latte Macchiato (RM9), Tom Yum Soup (RM12.5)", SignalNone,
		},
		{"suggest", model.IntentDishQuery, "how about tom yum", "I'd suggest: Tom Yum Soup (RM12.5). Want another recommendation?", SignalNone},
		{"suggest alias", model.IntentDishQuery, "can you suggest a latte", "I'd suggest: Latte Macchiato (RM9). Want another recommendation?", SignalNone},
		{"unknown dish", model.IntentDishQuery, "xyzzy", TextAskDish, SignalNone},
		{"item price", model.IntentPriceQuery, "how much is the tom yum soup", "Price: Tom Yum Soup (RM12.5)", SignalNone},
		{"indexed price", model.IntentPriceQuery, "price of americano", "Price: Americano (RM7.5)", SignalNone},
		{
			"category prices", model.IntentPriceQuery, "how much for milkshakes",
			"Prices (milkshakes): Chocolate Milkshake (RM11); Strawberry Shake (RM10.9)", SignalNone,
		},
		{"no item", model.IntentPriceQuery, "how much", TextAskPriceItem, SignalAwaitPriceItem},
		{"unknown item", model.IntentPriceQuery, "how much is the pizza?", TextAskPriceItem, SignalAwaitPriceItem},
		{"make reservation", model.IntentMakeReservation, "book a table", TextMakeReservation, SignalAwaitPartySize},
		{"modify reservation", model.IntentModifyReservation, "change my booking", TextModifyReservation, SignalNone},
		{"cancel reservation", model.IntentCancelReservation, "cancel", TextCancelReservation, SignalNone},
		{"greet", model.IntentGreet, "hi", TextGreet, SignalNone},
		{"goodbye", model.IntentGoodbye, "bye", TextGoodbye, SignalNone},
		{"fallback", model.IntentFallback, "???", TextFallback, SignalNone},
		{"unknown intent", model.Intent("weather"), "sunny?", TextFallback, SignalNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tp.Render(tc.intent, tc.text)
			assert.Equal(t, tc.wantText, got.Text)
			assert.Equal(t, tc.wantSignal, got.Signal)
		})
	}
}

func TestTemplater_ChefPicksFallBackToTags(t *testing.T) {
	info := DefaultInfo()
	info.ChefPicks = nil
	tp := newTemplater(info)

	got := tp.Render(model.IntentDishQuery, "what does the chef recommend")
	assert.Equal(t, "Chef’s recommendations today: Honey Butter Fried Chicken (RM18), Spicy Sambal Prawns (RM22)", got.Text)
}

func TestTemplater_EmptyCatalog(t *testing.T) {
	ix := catalog.Build(catalog.BuildInput{Lexicon: catalog.DefaultLexicon()})
	tp := New(ix, matcher.New(ix), DefaultInfo())

	assert.Equal(t, TextMenuUpdating, tp.Render(model.IntentMenuItems, "menu").Text)
	assert.Equal(t, "Our best sellers change daily!", tp.Render(model.IntentDishQuery, "best seller").Text)
	assert.Equal(t, "Chef is crafting something special today!", tp.Render(model.IntentDishQuery, "chef pick").Text)
	assert.Equal(t, TextAskPriceItem, tp.Render(model.IntentPriceQuery, "price of latte").Text)
}

func TestConversationReplies(t *testing.T) {
	assert.Equal(t, "Got it, 4 people. What time would you like?", PartyCaptured("4").Text)
	assert.Equal(t, "✅ Reservation confirmed for 4 people at 8pm. Thank you!", Confirmed("4", "8pm").Text)
	assert.Equal(t, TextEmptyInput, Empty().Text)
	assert.Equal(t, SignalNone, Confirmed("4", "8pm").Signal)
}

func TestPriceSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"how much is the latte", "the latte"},
		{"how mush are the puffs?", "the puffs"},
		{"price of americano", "americano"},
		{"cost for 2 teas", "2 teas"},
		{"how much", ""},
		{"price?", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, PriceSubject(tc.in))
		})
	}
}

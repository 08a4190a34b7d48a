package model

// Intent is the discrete category an utterance is routed to.
type Intent string

const (
	IntentOpeningHours      Intent = "opening_hours"
	IntentPriceQuery        Intent = "price_query"
	IntentDishQuery         Intent = "dish_query"
	IntentPaymentMethods    Intent = "payment_methods"
	IntentLocationParking   Intent = "location_parking"
	IntentMenuItems         Intent = "menu_items"
	IntentMakeReservation   Intent = "make_reservation"
	IntentModifyReservation Intent = "modify_reservation"
	IntentCancelReservation Intent = "cancel_reservation"
	IntentDietaryOptions    Intent = "dietary_options"
	IntentDeliveryInfo      Intent = "delivery_info"
	IntentTakeawayInfo      Intent = "takeaway_info"
	IntentGreet             Intent = "greet"
	IntentGoodbye           Intent = "goodbye"
	IntentFallback          Intent = "fallback"
)

// String implements fmt.Stringer.
func (i Intent) String() string {
	return string(i)
}

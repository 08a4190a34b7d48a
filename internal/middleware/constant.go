package middleware

const (
	HeaderRequestID      = "X-Request-ID"
	HeaderClientID       = "X-Client-ID"
	HeaderTelegramSecret = "X-Telegram-Bot-Api-Secret-Token"

	contextKeyClientID = "client_id"

	maxClientIDLen = 128
)

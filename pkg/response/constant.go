package response

const (
	MessageSuccess         = "Success"
	DefaultErrorMessage    = "Something went wrong"
	TooManyRequestsMessage = "Too many requests"

	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)

package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// Wall-clock layout; values are rendered in their own location.
	DateTimeFormat = "2006-01-02T15:04:05"
)

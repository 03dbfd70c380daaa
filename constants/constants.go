package constants

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"

	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"

	VENUE_NOT_FOUND       = "Venue not found"
	RESERVATION_NOT_FOUND = "Reservation not found"

	INVALID_RESERVATION_TIME = "Invalid reservation time."
	MISSING_REQUIRED_FIELDS  = "Missing required fields"
	PAST_MODIFICATION        = "Cannot modify to a past reservation."

	CREATE_VENUE_FAIL = "Cannot register venue"
	EDIT_VENUE_FAIL   = "Cannot update venue"
	DELETE_VENUE_FAIL = "Cannot delete venue"

	CREATE_RESERVATION_FAIL = "Cannot create reservation"
	EDIT_RESERVATION_FAIL   = "Cannot update reservation"
	DELETE_RESERVATION_FAIL = "Cannot cancel reservation"
)

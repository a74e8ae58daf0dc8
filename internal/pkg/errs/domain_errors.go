package errs

// Sentinels shared by the command and query layers
var (
	// Lookup errors
	ErrPropertyNotFound = New("property not found")
	ErrBookingNotFound  = New("booking not found")
	ErrEntityNotFound   = New("entity not found")

	// Write errors
	ErrDuplicateBookingCode = New("duplicate booking code")

	// Validation errors
	ErrDomainValidation = New("domain validation error")
)

package handlers

const (
	// Error messages returned to callers
	errChordNotFound = "chord not found"
	errUnknownKey    = "unknown key"
	errMissingKey    = "key is required for mode \"key\""
	errMissingChord  = "chord is required for mode \"start\""
)

package auth

// OIDCError carries both an operator-facing message and the error redirect
// the browser should be sent to.
type OIDCError struct {
	RedirectURL string
	Message     string
}

func (e *OIDCError) Error() string {
	return e.Message
}

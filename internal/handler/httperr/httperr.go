package httperr

// Response is the error envelope the middleware renders for recovered panics
// and for errors drained from the gin error stack.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

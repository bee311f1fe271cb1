package quickblog

type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupErrorBody is the only failure body the client inspects; every other
// endpoint collapses to a fixed message.
type signupErrorBody struct {
	Message string `json:"message"`
}

// categoryEnvelope wraps the created category the way the remote API
// returns it from POST /api/categories.
type categoryEnvelope struct {
	Category struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	} `json:"category"`
}

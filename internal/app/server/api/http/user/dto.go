package user

type CredentialsRequest struct {
	Email    string `json:"email" format:"email" doc:"Account email address"`
	Password string `json:"password" minLength:"8" maxLength:"72" doc:"Account password"`
}

type registerInput struct {
	Body CredentialsRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id,omitempty"`
	Status string `json:"status"`
}

type loginInput struct {
	Body CredentialsRequest
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

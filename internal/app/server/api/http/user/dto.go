package user

import "github.com/JackchrisO/Synapse/internal/domain/user"

type registerInput struct {
	Body user.RegisterRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Username string `json:"username" doc:"Account name" minLength:"1"`
	Password string `json:"password" doc:"Password" minLength:"1"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Reason string `json:"reason,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

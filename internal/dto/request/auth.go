package request

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,name"`
	Email    string `json:"email" validate:"required,email_addr"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address" validate:"required,address"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_addr"`
	Password string `json:"password" validate:"required"`
}

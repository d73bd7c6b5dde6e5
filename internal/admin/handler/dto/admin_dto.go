package dto

type AdminLoginRequest struct {
	Login  string `json:"login" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

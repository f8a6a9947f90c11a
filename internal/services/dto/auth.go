package dto

type RegisterRequest struct {
	UserType     string `form:"user_type" validate:"required,is-user-type"`
	Name         string `form:"name" validate:"required"`
	Place        string `form:"place" validate:"required"`
	DOB          string `form:"dob" validate:"required"`
	MobileNumber string `form:"mobile_number" validate:"required"`
	Password     string `form:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	MobileNumber string `form:"mobile_number" validate:"required"`
	Password     string `form:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	MobileNumber string `form:"mobile_number" validate:"required"`
	DOB          string `form:"dob" validate:"required"`
}

type ResetPasswordRequest struct {
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
}

package models

// User types carried in tokens and password records
const (
	UserTypeFarmer = "farmer"
	UserTypeAdmin  = "admin"
)

// SendOTPRequest represents a request to send a login OTP
type SendOTPRequest struct {
	Email string `json:"email" validate:"required"`
}

// VerifyOTPRequest represents a request to verify an OTP and log in
type VerifyOTPRequest struct {
	Email            string              `json:"email" validate:"required"`
	OTP              string              `json:"otp" validate:"required"`
	RegistrationData *FarmerRegistration `json:"registration_data,omitempty"`
}

// RegisterRequest represents a password-based farmer registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// LoginRequest represents a password-based login for farmers or admins
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SocialLoginRequest represents the payload relayed from a social provider
// callback. The provider itself comes from the URL path.
type SocialLoginRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
}

// AuthResponse represents the response after successful authentication.
// Exactly one of Farmer or Admin is set. NewUser distinguishes first-time
// creation from a returning principal.
type AuthResponse struct {
	Token    string  `json:"token"`
	Farmer   *Farmer `json:"farmer,omitempty"`
	Admin    *Admin  `json:"admin,omitempty"`
	UserType string  `json:"user_type"`
	NewUser  bool    `json:"new_user"`
}

// Principal is a resolved session: the full record behind a verified token.
type Principal struct {
	UserType string  `json:"user_type"`
	Farmer   *Farmer `json:"farmer,omitempty"`
	Admin    *Admin  `json:"admin,omitempty"`
}

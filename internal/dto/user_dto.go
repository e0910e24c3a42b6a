package dto

type UserProfileResponse struct {
	Id    uint   `json:"id"`
	Email string `json:"email"`
}

// UpdateProfileRequest fully replaces both mutable fields; the password is
// rehashed on every call.
type UpdateProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister             = "user registered successfully"
	MessageSuccessLogin                = "login success"
	MessageSuccessVerifyEmail          = "email verified successfully"
	MessageSuccessGetProfile           = "profile retrieved successfully"
	MessageSuccessUpdateProfilePicture = "profile picture updated successfully"

	MessageFailedRegister             = "failed to register user"
	MessageFailedLogin                = "failed to login"
	MessageFailedVerifyEmail          = "failed to verify email"
	MessageFailedGetProfile           = "failed to retrieve profile"
	MessageFailedUpdateProfilePicture = "failed to update profile picture"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfilePictureRequest struct {
		Picture *multipart.FileHeader `json:"picture" form:"picture" validate:"required"`
	}

	ProfileResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Email          string    `json:"email"`
		IsVerified     bool      `json:"is_verified"`
		ProfilePicture string    `json:"profile_picture,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)

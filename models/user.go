// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// PasswordHash is the bcrypt digest of the user's password and is never
// serialized to JSON.
type User struct {
	// ID is the UUIDv7 identifier assigned at registration.
	ID string `json:"id"`

	// Email is the unique, lower-cased login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// Name is the display name of the user. Optional.
	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the subset of user fields that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the client-facing representation of a [User].
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterInput is the request body of POST /api/users/register.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

// Normalized trims the input and lower-cases the email. The password is left
// untouched.
func (in RegisterInput) Normalized() RegisterInput {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	return in
}

// LoginInput is the request body of POST /api/users/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (in LoginInput) Normalized() LoginInput {
	in.Email = normalizeEmail(in.Email)
	return in
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

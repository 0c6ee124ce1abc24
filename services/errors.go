package services

import "errors"

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when a signup reuses a registered email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned on a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAdminProtected is returned when deleting an admin-role user.
var ErrAdminProtected = errors.New("cannot delete admin users")

package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrEmptyPassword      = errors.New("password cannot be empty")
)

// Role distinguishes the single administrator from everyone else. Public
// calendar reads need no account at all.
type Role string

const RoleAdmin Role = "admin"

func NewRole(s string) (Role, error) {
	if Role(s) != RoleAdmin {
		return "", ErrInvalidRole
	}
	return RoleAdmin, nil
}

func (r Role) String() string {
	return string(r)
}

// User is the administrator account behind the login gate.
type User struct {
	id       uuid.UUID
	username string
	role     Role
	isActive bool
}

func ReconstructUser(id uuid.UUID, username string, role Role, isActive bool) *User {
	return &User{id: id, username: username, role: role, isActive: isActive}
}

func (u *User) ID() uuid.UUID    { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) Role() Role       { return u.role }
func (u *User) IsActive() bool   { return u.isActive }

// Credentials is the validated login input.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credentials{}, ErrEmptyUsername
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string { return c.username }
func (c Credentials) Password() string { return c.password }

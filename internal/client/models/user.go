// Package models defines the data shapes exchanged with the DevTinder API
// and persisted locally between sessions.
package models

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrInvalidShape is returned when a user record arriving from the API or
// from local storage is missing required fields or cannot be decoded at all.
// Callers match it with errors.Is.
var ErrInvalidShape = errors.New("invalid user record shape")

// User is the server's view of an account, returned by the auth and profile
// endpoints. It is owned by the session store while a session is active and
// replaced wholesale, never mutated field by field from outside.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
	ProfilePic  string   `json:"profile_pic"`
	Connections []string `json:"connections"`

	FriendRequestsSent     []string `json:"friend_requests_sent"`
	FriendRequestsReceived []string `json:"friend_requests_received"`

	IsOnline  bool      `json:"is_online"`
	LastSeen  time.Time `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the minimal boundary contract: a user record must carry a
// non-empty id and email. Everything else is optional on the wire.
func (u *User) Validate() error {
	if u == nil || u.ID == "" || u.Email == "" {
		return ErrInvalidShape
	}
	return nil
}

// DecodeUser unmarshals and validates a user record in one step. Malformed
// or incomplete payloads yield ErrInvalidShape (wrapped where the decoder
// provides detail).
func DecodeUser(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, errors.Join(ErrInvalidShape, err)
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate is the whole-document payload for PUT /api/profile.
type ProfileUpdate struct {
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
	ProfilePic string   `json:"profile_pic"`
}

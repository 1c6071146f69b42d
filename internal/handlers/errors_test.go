package handlers

import (
	"errors"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"bloglist/internal/services"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{&services.ValidationError{Reason: "title and url are required"}, http.StatusBadRequest},
		{services.ErrUsernameTaken, http.StatusBadRequest},
		{services.ErrInvalidToken, http.StatusUnauthorized},
		{services.ErrBadCredentials, http.StatusUnauthorized},
		{services.ErrNotOwner, http.StatusForbidden},
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{errors.New("driver: broken pipe"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, msg := statusForError(tc.err)
		if status != tc.status {
			t.Fatalf("statusForError(%v) = %d, want %d", tc.err, status, tc.status)
		}
		if msg == "" {
			t.Fatalf("statusForError(%v) returned empty message", tc.err)
		}
	}
}

func TestStatusForErrorConflictMessage(t *testing.T) {
	_, msg := statusForError(services.ErrUsernameTaken)
	if msg != "username must be unique" {
		t.Fatalf("conflict message = %q", msg)
	}
}

func TestStatusForErrorHidesInternals(t *testing.T) {
	_, msg := statusForError(errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))
	if msg != "internal error" {
		t.Fatalf("internal error leaked: %q", msg)
	}
}

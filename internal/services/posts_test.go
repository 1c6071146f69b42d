package services

import (
	"errors"
	"testing"

	"bloglist/internal/storage"
)

func intPtr(v int) *int { return &v }

func TestNewPostFromInputRequiresTitleAndURL(t *testing.T) {
	cases := []CreatePostInput{
		{},
		{Title: "no url", Author: "someone"},
		{URL: "https://example.com", Author: "someone"},
	}
	for _, in := range cases {
		_, err := NewPostFromInput(in, 1)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("NewPostFromInput(%+v) = %v, want ValidationError", in, err)
		}
	}
}

func TestNewPostFromInputLikesDefault(t *testing.T) {
	// likes 缺省落为 0；显式 0 不视为缺省。
	p, err := NewPostFromInput(CreatePostInput{Title: "t", URL: "https://example.com"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Likes != 0 {
		t.Fatalf("absent likes = %d, want 0", p.Likes)
	}

	p, err = NewPostFromInput(CreatePostInput{Title: "t", URL: "https://example.com", Likes: intPtr(0)}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Likes != 0 {
		t.Fatalf("explicit zero likes = %d, want 0", p.Likes)
	}

	p, err = NewPostFromInput(CreatePostInput{Title: "t", URL: "https://example.com", Likes: intPtr(7)}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Likes != 7 {
		t.Fatalf("likes = %d, want 7", p.Likes)
	}
}

func TestCheckOwnership(t *testing.T) {
	p := &storage.Post{ID: 1, UserID: 7}
	if err := CheckOwnership(p, 7); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	if err := CheckOwnership(p, 8); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("non-owner allowed: %v", err)
	}
}

func TestNewPostFromInputOwner(t *testing.T) {
	p, err := NewPostFromInput(CreatePostInput{Title: "t", Author: "a", URL: "https://example.com"}, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UserID != 99 {
		t.Fatalf("owner id = %d, want 99", p.UserID)
	}
	if p.Author != "a" || p.Title != "t" || p.URL != "https://example.com" {
		t.Fatalf("fields not carried over: %+v", p)
	}
}

package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"bloglist/internal/storage"
)

func TestValidateRegistrationMissing(t *testing.T) {
	cases := []struct{ username, password string }{
		{"", ""},
		{"", "sekret"},
		{"mluukkai", ""},
	}
	for _, tc := range cases {
		err := ValidateRegistration(tc.username, tc.password)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("ValidateRegistration(%q, %q) = %v, want ValidationError", tc.username, tc.password, err)
		}
		if ve.Reason != "username or password missing" {
			t.Fatalf("unexpected reason: %q", ve.Reason)
		}
	}
}

func TestValidateRegistrationLengthBoundary(t *testing.T) {
	// 边界恰为 3：长度 2 失败，长度 3 通过。
	if err := ValidateRegistration("ab", "sekret"); err == nil {
		t.Fatal("username of length 2 accepted")
	}
	if err := ValidateRegistration("mluukkai", "ab"); err == nil {
		t.Fatal("password of length 2 accepted")
	}
	if err := ValidateRegistration("abc", "abc"); err != nil {
		t.Fatalf("length-3 username/password rejected: %v", err)
	}
}

func TestValidateRegistrationCountsRunes(t *testing.T) {
	// 长度按字符数而非字节数计：两个汉字（6 字节）不足 3 个字符。
	if err := ValidateRegistration("日日", "sekret"); err == nil {
		t.Fatal("2-rune username accepted")
	}
	if err := ValidateRegistration("日日日", "sekret"); err != nil {
		t.Fatalf("3-rune username rejected: %v", err)
	}
	if err := ValidateRegistration("mluukkai", "日日"); err == nil {
		t.Fatal("2-rune password accepted")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("sekret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	svc := &UserService{}
	u := &storage.User{Username: "mluukkai", Password: string(hash)}
	if !svc.CheckPassword(u, "sekret") {
		t.Fatal("correct password rejected")
	}
	if svc.CheckPassword(u, "wrong") {
		t.Fatal("wrong password accepted")
	}
	if svc.CheckPassword(&storage.User{}, "sekret") {
		t.Fatal("empty hash accepted")
	}
}

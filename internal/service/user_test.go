package service

import (
	"ClipHub/utils"
	"errors"
	"testing"
)

// TestRegisterThenVerify checks registration followed by credential checks.
func TestRegisterThenVerify(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "alice")

	user, err := VerifyCredentials("alice", "pw-alice")
	if err != nil {
		t.Fatalf("verify with correct password failed: %v", err)
	}
	if user.UserName != "alice" {
		t.Fatalf("expect alice, got %s", user.UserName)
	}
	if user.Password == "pw-alice" {
		t.Fatal("stored password must be hashed")
	}

	if _, err := VerifyCredentials("alice", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong password should fail closed, got %v", err)
	}
	if _, err := VerifyCredentials("nobody", "pw"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("unknown user should fail closed, got %v", err)
	}
}

// TestRegisterDuplicateUsername checks the second registration conflicts.
func TestRegisterDuplicateUsername(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "bob")

	err := RegisterUser("bob", "other@test.com", "other-pw")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expect ErrConflict, got %v", err)
	}
}

// TestLoginTokenIsUsername checks the default authenticator issues the
// bare username as token.
func TestLoginTokenIsUsername(t *testing.T) {
	cleanTables(t)
	mustRegister(t, "carol")

	user, err := VerifyCredentials("carol", "pw-carol")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	token, err := utils.Auth.Issue(user)
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}
	if token != "carol" {
		t.Fatalf("default token should be the username, got %q", token)
	}
}

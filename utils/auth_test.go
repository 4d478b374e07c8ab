package utils

import (
	"ClipHub/model"
	"errors"
	"testing"
	"time"
)

func fakeLookup(users ...*model.User) UserLookup {
	byName := map[string]*model.User{}
	byID := map[uint64]*model.User{}
	for _, u := range users {
		byName[u.UserName] = u
		byID[u.ID] = u
	}
	return UserLookup{
		ByUsername: func(name string) (*model.User, error) {
			if u, ok := byName[name]; ok {
				return u, nil
			}
			return nil, errors.New("record not found")
		},
		ByID: func(id uint64) (*model.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, errors.New("record not found")
		},
	}
}

// TestUsernameAuthenticator checks the token equals the username and
// unknown tokens are rejected.
func TestUsernameAuthenticator(t *testing.T) {
	alice := &model.User{ID: 1, UserName: "alice"}
	auth := &UsernameAuthenticator{Lookup: fakeLookup(alice)}

	token, err := auth.Issue(alice)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token != "alice" {
		t.Fatalf("token should be the username, got %q", token)
	}

	user, err := auth.Verify("alice")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if user.ID != alice.ID {
		t.Fatalf("expect user %d, got %d", alice.ID, user.ID)
	}

	if _, err := auth.Verify("mallory"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expect ErrInvalidToken, got %v", err)
	}
}

// TestJWTAuthenticatorRoundtrip checks issue then verify resolves the
// same user and rejects garbage.
func TestJWTAuthenticatorRoundtrip(t *testing.T) {
	bob := &model.User{ID: 7, UserName: "bob"}
	auth := &JWTAuthenticator{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
		Lookup: fakeLookup(bob),
	}

	token, err := auth.Issue(bob)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "bob" {
		t.Fatal("jwt token should not be the bare username")
	}

	user, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if user.ID != bob.ID {
		t.Fatalf("expect user %d, got %d", bob.ID, user.ID)
	}

	if _, err := auth.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expect ErrInvalidToken, got %v", err)
	}
}

// TestJWTAuthenticatorWrongSecret checks tokens signed with another
// key do not verify.
func TestJWTAuthenticatorWrongSecret(t *testing.T) {
	bob := &model.User{ID: 7, UserName: "bob"}
	issuer := &JWTAuthenticator{Secret: []byte("key-one"), TTL: time.Hour, Lookup: fakeLookup(bob)}
	verifier := &JWTAuthenticator{Secret: []byte("key-two"), TTL: time.Hour, Lookup: fakeLookup(bob)}

	token, err := issuer.Issue(bob)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expect ErrInvalidToken, got %v", err)
	}
}

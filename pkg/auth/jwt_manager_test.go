package auth

import (
	"net/http"
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)

	token, err := mgr.Generate("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, expected %q", claims.Subject, "user-123")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("other", time.Hour)

	token, _ := mgr.Generate("user-123")

	if _, err := other.Verify(token); err == nil {
		t.Error("expected verification to fail with wrong secret")
	}
}

func TestVerify_Expired(t *testing.T) {
	mgr := NewJWTManager("secret", -time.Minute)

	token, _ := mgr.Generate("user-123")

	if _, err := mgr.Verify(token); err == nil {
		t.Error("expected verification of expired token to fail")
	}
}

func TestExpiry(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour)

	token, _ := mgr.Generate("user-123")

	exp, err := mgr.Expiry(token)
	if err != nil {
		t.Fatalf("expiry: %v", err)
	}

	if until := time.Until(exp); until < 59*time.Minute || until > 61*time.Minute {
		t.Errorf("unexpected expiry: %v from now", until)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	testCases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc.def.ghi", "abc.def.ghi", false},
		{"Basic dXNlcg==", "", true},
		{"Bearer", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		r, _ := http.NewRequest("GET", "/", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}

		got, err := ExtractTokenFromHeader(r)
		if tc.wantErr {
			if err == nil {
				t.Errorf("header %q: expected error", tc.header)
			}
			continue
		}
		if err != nil {
			t.Errorf("header %q: unexpected error %v", tc.header, err)
			continue
		}
		if got != tc.want {
			t.Errorf("header %q: got %q, expected %q", tc.header, got, tc.want)
		}
	}
}

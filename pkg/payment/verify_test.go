package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func verifyServer(t *testing.T, status int, body interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("could not decode verify request: %v", err)
		}
		if req["transaction_id"] == "" {
			t.Error("verify request missing transaction_id")
		}
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}))
}

func TestVerify_Confirmed(t *testing.T) {
	srv := verifyServer(t, http.StatusOK, map[string]interface{}{
		"message": "Payment verified and saved",
		"data":    map[string]string{"status": "successful"},
	})
	defer srv.Close()

	client := NewVerificationClient(srv.URL, "test-key")
	if err := client.Verify(context.Background(), "tx-100"); err != nil {
		t.Fatalf("expected confirmed verification, got %v", err)
	}
}

func TestVerify_WrongMessageIsUnverified(t *testing.T) {
	srv := verifyServer(t, http.StatusOK, map[string]interface{}{
		"message": "Payment received",
		"data":    map[string]string{"status": "successful"},
	})
	defer srv.Close()

	client := NewVerificationClient(srv.URL, "")
	err := client.Verify(context.Background(), "tx-101")
	if !errors.Is(err, ErrUnverified) {
		t.Fatalf("expected ErrUnverified, got %v", err)
	}
}

func TestVerify_PendingStatusIsUnverified(t *testing.T) {
	srv := verifyServer(t, http.StatusOK, map[string]interface{}{
		"message": "Payment verified and saved",
		"data":    map[string]string{"status": "pending"},
	})
	defer srv.Close()

	client := NewVerificationClient(srv.URL, "")
	err := client.Verify(context.Background(), "tx-102")
	if !errors.Is(err, ErrUnverified) {
		t.Fatalf("expected ErrUnverified for pending status, got %v", err)
	}
}

func TestVerify_Non2xxIsError(t *testing.T) {
	srv := verifyServer(t, http.StatusInternalServerError, nil)
	defer srv.Close()

	client := NewVerificationClient(srv.URL, "")
	if err := client.Verify(context.Background(), "tx-103"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestVerify_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewVerificationClient(srv.URL, "")
	if err := client.Verify(context.Background(), "tx-104"); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestVerify_UnreachableEndpointIsError(t *testing.T) {
	client := NewVerificationClient("http://127.0.0.1:1/verify", "")
	if err := client.Verify(context.Background(), "tx-105"); err == nil {
		t.Fatal("expected error for unreachable endpoint")
	}
}

func TestVerify_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Payment verified and saved",
			"data":    map[string]string{"status": "successful"},
		})
	}))
	defer srv.Close()

	client := NewVerificationClient(srv.URL, "secret")
	if err := client.Verify(context.Background(), "tx-106"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer token, got %q", gotAuth)
	}
}

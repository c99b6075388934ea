package checkout

import (
	"errors"
	"testing"

	"maasaicraft.co.ke/shop/api/pkg/models"
)

func sessionWithItem(t *testing.T) *Session {
	t.Helper()
	s := NewSession("test-session")
	s.Cart().AddItem(&models.Product{
		ID: 1, Name: "Traditional Kiondo - Large", Price: 2500, Sizes: []string{"Large"},
	}, "Large")
	return s
}

func validDetails() models.CustomerDetails {
	return models.CustomerDetails{
		Name:  "Wanjiku Kamau",
		Email: "wanjiku@example.com",
		Phone: "0712345678",
	}
}

func TestBeginCheckout_EmptyCartBlocked(t *testing.T) {
	s := NewSession("s")
	if err := s.BeginCheckout(); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if s.Stage() != StageCart {
		t.Fatalf("stage moved on blocked transition: %s", s.Stage())
	}
}

func TestBeginCheckout_MovesToDetails(t *testing.T) {
	s := sessionWithItem(t)
	if err := s.BeginCheckout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Stage() != StageDetails {
		t.Fatalf("expected details stage, got %s", s.Stage())
	}
}

func TestBeginCheckout_WrongStageRejected(t *testing.T) {
	s := sessionWithItem(t)
	if err := s.BeginCheckout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.BeginCheckout(); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got %v", err)
	}
}

func TestSubmitDetails_MissingFields(t *testing.T) {
	s := sessionWithItem(t)
	s.BeginCheckout()

	err := s.SubmitDetails(models.CustomerDetails{Email: "wanjiku@example.com"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.MissingFields) != 2 {
		t.Fatalf("expected name and phone missing, got %v", ve.MissingFields)
	}
	if s.Stage() != StageDetails {
		t.Fatalf("stage moved on invalid details: %s", s.Stage())
	}
}

func TestSubmitDetails_PhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"0712345678", true},
		{"+254712345678", true},
		{"254112345678", true},
		{"12345", false},
		{"0812345678", false},
	}

	for _, tc := range cases {
		s := sessionWithItem(t)
		s.BeginCheckout()

		details := validDetails()
		details.Phone = tc.phone
		err := s.SubmitDetails(details)

		if tc.valid && err != nil {
			t.Errorf("SubmitDetails with phone %q: unexpected error %v", tc.phone, err)
		}
		if !tc.valid {
			var ve *ValidationError
			if !errors.As(err, &ve) || !ve.InvalidPhone {
				t.Errorf("SubmitDetails with phone %q: expected invalid phone error, got %v", tc.phone, err)
			}
		}
	}
}

func TestSubmitDetails_FreezesDetailsAndAdvances(t *testing.T) {
	s := sessionWithItem(t)
	s.BeginCheckout()

	if err := s.SubmitDetails(validDetails()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Stage() != StagePayment {
		t.Fatalf("expected payment stage, got %s", s.Stage())
	}
	if s.Details().Name != "Wanjiku Kamau" {
		t.Fatalf("details not stored: %+v", s.Details())
	}
}

func TestBack_StepsTowardsCart(t *testing.T) {
	s := sessionWithItem(t)
	s.BeginCheckout()
	s.SubmitDetails(validDetails())

	s.Back()
	if s.Stage() != StageDetails {
		t.Fatalf("expected details after back, got %s", s.Stage())
	}
	if s.Details().Name == "" {
		t.Fatal("back cleared the entered details")
	}

	s.Back()
	if s.Stage() != StageCart {
		t.Fatalf("expected cart after second back, got %s", s.Stage())
	}

	s.Back() // already at cart, no-op
	if s.Stage() != StageCart {
		t.Fatalf("back below cart stage: %s", s.Stage())
	}
}

func TestClosePanel_KeepsCartAndDetails(t *testing.T) {
	s := sessionWithItem(t)
	s.BeginCheckout()
	s.SubmitDetails(validDetails())

	s.ClosePanel()
	if s.Stage() != StageCart {
		t.Fatalf("expected cart stage after close, got %s", s.Stage())
	}
	if s.Cart().IsEmpty() {
		t.Fatal("close panel cleared the cart")
	}
	if s.Details().IsEmpty() {
		t.Fatal("close panel cleared the details")
	}
}

func TestStore_CreateGetRemove(t *testing.T) {
	store := NewStore()

	s := store.Create()
	if s.ID == "" {
		t.Fatal("expected generated session id")
	}

	got, ok := store.Get(s.ID)
	if !ok || got != s {
		t.Fatal("could not get created session")
	}

	store.Remove(s.ID)
	if _, ok := store.Get(s.ID); ok {
		t.Fatal("session still present after remove")
	}

	if _, ok := store.Get("missing"); ok {
		t.Fatal("got a session for an unknown id")
	}
}

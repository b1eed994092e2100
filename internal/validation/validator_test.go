package validation

import (
	"errors"
	"testing"

	"toyland-backend/internal/errs"
)

type listingRequest struct {
	Name     string  `json:"toyName" validate:"required,max=10"`
	Email    string  `json:"postedBy" validate:"required,email"`
	Price    float64 `json:"price" validate:"gte=0"`
	Rating   float64 `json:"rating" validate:"lte=5"`
	URL      string  `json:"url" validate:"omitempty,url"`
	Internal string  `json:"-" validate:"omitempty,min=3"`
}

func TestStructValid(t *testing.T) {
	req := listingRequest{Name: "Racer", Email: "kid@example.com", Price: 9.5, URL: "https://example.com/a.png"}
	if err := Struct(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructFieldErrors(t *testing.T) {
	req := listingRequest{Name: "A name that is too long", Email: "nope", Price: -1, Rating: 9, URL: "::not a url"}

	err := Struct(&req)
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Code != errs.CodeValidationError {
		t.Errorf("Code = %q", httpErr.Code)
	}

	want := map[string]string{
		"toyName":  "must not exceed 10 characters",
		"postedBy": "must be a valid email address",
		"price":    "must be greater than or equal to 0",
		"rating":   "must be less than or equal to 5",
		"url":      "must be a valid URL",
	}
	got := map[string]string{}
	for _, fe := range httpErr.Errors {
		got[fe.Field] = fe.Error
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("field %s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestStructRequired(t *testing.T) {
	err := Struct(&listingRequest{})
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if len(httpErr.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", httpErr.Errors)
	}
	for _, fe := range httpErr.Errors {
		if fe.Error != "is required" {
			t.Errorf("field %s: %q", fe.Field, fe.Error)
		}
	}
}

package middleware

import (
	"testing"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func TestValidateRequest_AllFieldsPresent(t *testing.T) {
	req := sampleRequest{Name: "Bob", Email: "bob@x.com"}
	if errs := ValidateRequest(req); errs != nil {
		t.Errorf("expected no validation errors, got %+v", errs)
	}
}

func TestValidateRequest_MissingFields(t *testing.T) {
	errs := ValidateRequest(sampleRequest{})
	if len(errs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d: %+v", len(errs), errs)
	}
	for _, e := range errs {
		if e.Type != "required" {
			t.Errorf("expected required complaint, got %+v", e)
		}
		if e.Message != "This field is required" {
			t.Errorf("unexpected message: %q", e.Message)
		}
	}
}

func TestValidateRequest_OneMissingField(t *testing.T) {
	errs := ValidateRequest(sampleRequest{Name: "Bob"})
	if len(errs) != 1 {
		t.Fatalf("expected 1 validation error, got %d", len(errs))
	}
	if errs[0].Field != "Email" {
		t.Errorf("expected Email complaint, got %+v", errs[0])
	}
}

package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestToSnakeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"RollNo", "roll_no"},
		{"FullName", "full_name"},
		{"Email", "email"},
		{"CurrentCGPA", "current_cgpa"},
		{"Marks10th", "marks_10th"},
		{"ActiveBacklog", "active_backlog"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFieldErrorsFromBinding(t *testing.T) {
	t.Parallel()

	v := validator.New()
	v.SetTagName("binding")
	req := RegisterStudentRequest{
		RollNo:   "CS2021042",
		FullName: "A",
		Email:    "not-an-email",
		Password: "secret123",
		Phone:    "9876543210",
		Branch:   "Computer",
		Class:    "BE",
	}

	err := v.Struct(req)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	fields := FieldErrorsFromBinding(err)
	if len(fields) == 0 {
		t.Fatal("expected field errors")
	}

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	if msg, ok := byField["email"]; !ok || msg != "must be a valid email address" {
		t.Errorf("email error = %q", msg)
	}
	if _, ok := byField["full_name"]; !ok {
		t.Error("expected a full_name violation for a one-character name")
	}
}

func TestFieldErrorsFromBindingNonValidator(t *testing.T) {
	t.Parallel()

	fields := FieldErrorsFromBinding(errors.New("unexpected EOF"))
	if len(fields) != 1 || fields[0].Field != "body" {
		t.Fatalf("expected single body error, got %+v", fields)
	}
}

package validator

import (
	"errors"
	"strings"
	"testing"

	playground "github.com/go-playground/validator/v10"
)

type sample struct {
	Month  string  `validate:"required,yearmonth"`
	Type   string  `validate:"omitempty,jobtype"`
	Status string  `validate:"omitempty,jobstatus"`
	Role   string  `validate:"omitempty,staffrole"`
	Salary float64 `validate:"gte=0"`
}

func TestIsYearMonth(t *testing.T) {
	for s, want := range map[string]bool{
		"2025-01": true,
		"1999-12": true,
		"2025-13": false,
		"2025-1":  false,
		"25-01":   false,
		"2025/01": false,
		"":        false,
	} {
		if got := IsYearMonth(s); got != want {
			t.Errorf("IsYearMonth(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestCustomTags(t *testing.T) {
	v := playground.New()
	if err := RegisterOn(v); err != nil {
		t.Fatalf("RegisterOn: %v", err)
	}

	tests := []struct {
		name string
		in   sample
		msg  string
	}{
		{"valid", sample{Month: "2025-02", Type: "remote", Status: "closed", Role: "hr"}, ""},
		{"missing month", sample{}, "month is required"},
		{"bad month", sample{Month: "Feb"}, "month must be in YYYY-MM format"},
		{"bad type", sample{Month: "2025-02", Type: "gig"}, "type must be one of"},
		{"bad status", sample{Month: "2025-02", Status: "open"}, "status must be one of"},
		{"bad role", sample{Month: "2025-02", Role: "user"}, "role must be one of hr, developer"},
		{"negative salary", sample{Month: "2025-02", Salary: -1}, "salary must be greater than or equal to 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.msg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := Message(err); !strings.Contains(got, tt.msg) {
				t.Errorf("Message = %q, want it to contain %q", got, tt.msg)
			}
		})
	}
}

func TestMessageForOtherErrors(t *testing.T) {
	if got := Message(errors.New("unexpected EOF")); got != "Invalid request body" {
		t.Errorf("Message = %q", got)
	}
}

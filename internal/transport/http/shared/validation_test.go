package shared

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	day, err := ParseDate("2025-06-15")
	if err != nil || day.Year() != 2025 || day.Month() != time.June {
		t.Fatalf("plain date failed: %v %v", day, err)
	}

	stamp, err := ParseDate("2025-06-15T10:30:00Z")
	if err != nil || stamp.Hour() != 10 {
		t.Fatalf("rfc3339 failed: %v %v", stamp, err)
	}

	if _, err := ParseDate("15/06/2025"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestValidatorCollectsAndSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("title", "  ", "title is required")
	v.Enum("priority", "Urgent", []string{"Low", "Medium", "High"}, "priority must be Low, Medium, or High")
	v.Required("name", "ok", "never added")

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
	if issues[0].Field != "priority" || issues[1].Field != "title" {
		t.Fatalf("issues not sorted by field: %v", issues)
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()
	if _, ok := v.Date("dueDate", "not-a-date"); ok {
		t.Fatal("expected invalid date to fail")
	}
	if !v.HasIssues() {
		t.Fatal("invalid date must record an issue")
	}
}

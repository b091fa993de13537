package notification

import (
	"strings"
	"testing"
)

func TestFormatConsultationMessage(t *testing.T) {
	req := testConsultation()
	msg := FormatConsultationMessage(req)

	for _, want := range []string{
		"Иван Иванов",
		"ivan@example.com",
		"+998901234567",
		"Договоры", // display label, not the raw enum value
		"Нужна помощь с договором аренды",
		"2025-10-23 10:30:00",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "contracts") {
		t.Fatalf("message should carry the display label, got:\n%s", msg)
	}
}

func TestFormatConsultationMessageEmptyComment(t *testing.T) {
	req := testConsultation()
	req.Comment = ""
	msg := FormatConsultationMessage(req)
	if !strings.Contains(msg, "No comments") {
		t.Fatalf("expected placeholder for empty comment:\n%s", msg)
	}
}

func TestFormatConsultationMessageDeterministic(t *testing.T) {
	req := testConsultation()
	if FormatConsultationMessage(req) != FormatConsultationMessage(req) {
		t.Fatalf("formatting must be deterministic")
	}
}

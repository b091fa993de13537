package consultation

import (
	"regexp"
	"strings"

	"legalform/models"
)

const (
	maxNameLength  = 200
	maxPhoneLength = 20
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// phoneDigits strips the separator characters allowed in phone numbers.
// What remains must be all digits for the number to be valid.
func phoneDigits(phone string) (string, bool) {
	stripped := strings.NewReplacer("+", "", " ", "", "-", "").Replace(phone)
	if stripped == "" {
		return "", false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return stripped, true
}

// validateInput checks a raw submission and returns the normalized record
// ready for persistence, or the full set of field errors. No side effects.
func validateInput(input models.ConsultationInput) (models.ConsultationRequest, *ValidationError) {
	fieldErrs := make(map[string]string)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrs["name"] = "Это поле обязательно"
	} else if len([]rune(name)) > maxNameLength {
		fieldErrs["name"] = "Имя слишком длинное"
	}

	email := strings.TrimSpace(input.Email)
	if !emailPattern.MatchString(email) {
		fieldErrs["email"] = "Неверный формат email"
	}

	phone := strings.TrimSpace(input.Phone)
	if _, ok := phoneDigits(phone); !ok || len([]rune(phone)) > maxPhoneLength {
		fieldErrs["phone"] = "Неверный формат телефона"
	}

	serviceType := models.ServiceType(input.ServiceType)
	if !serviceType.Valid() {
		fieldErrs["service_type"] = "Неизвестный тип услуги"
	}

	if len(fieldErrs) > 0 {
		return models.ConsultationRequest{}, &ValidationError{Fields: fieldErrs}
	}

	return models.ConsultationRequest{
		Name:        name,
		Email:       email,
		Phone:       phone,
		ServiceType: serviceType,
		Comment:     strings.TrimSpace(input.Comment),
	}, nil
}

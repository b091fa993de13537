// models/consultation.go
package models

import "time"

// ConsultationRequest is one submitted consultation form. Records are
// append-only: ID and CreatedAt are assigned by the repository at insert
// time and nothing is ever mutated afterwards.
type ConsultationRequest struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone" json:"phone"`
	ServiceType ServiceType `bson:"serviceType" json:"service_type"`
	Comment     string      `bson:"comment" json:"comment"`
	CreatedAt   time.Time   `bson:"createdAt" json:"created_at"`
}

// ConsultationInput is the raw intake payload before validation.
type ConsultationInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"service_type"`
	Comment     string `json:"comment"`
}

// ConsultationView is the API representation of a stored record, which
// adds the display label next to the raw service type value.
type ConsultationView struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	ServiceType        ServiceType `json:"service_type"`
	ServiceTypeDisplay string      `json:"service_type_display"`
	Comment            string      `json:"comment"`
	CreatedAt          time.Time   `json:"created_at"`
}

// View converts a stored record into its API representation.
func (r ConsultationRequest) View() ConsultationView {
	return ConsultationView{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		ServiceType:        r.ServiceType,
		ServiceTypeDisplay: r.ServiceType.Label(),
		Comment:            r.Comment,
		CreatedAt:          r.CreatedAt,
	}
}

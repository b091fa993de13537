package notification

import (
	"fmt"
	"strings"

	"legalform/models"
)

const consultationMessageTemplate = `🔔 New Request For Consultation!

👤 Name: %s
📧 Email: %s
📱 Phone Number: %s
📋 Consultation: %s
💬 Comments: %s

🕐 Time: %s`

// FormatConsultationMessage renders the notification text for a stored
// consultation request. Output is deterministic for a given record.
func FormatConsultationMessage(req *models.ConsultationRequest) string {
	comment := req.Comment
	if comment == "" {
		comment = "No comments"
	}
	return strings.TrimSpace(fmt.Sprintf(
		consultationMessageTemplate,
		req.Name,
		req.Email,
		req.Phone,
		req.ServiceType.Label(),
		comment,
		req.CreatedAt.Format("2006-01-02 15:04:05"),
	))
}

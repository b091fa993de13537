package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Consultation endpoints
	CreateConsultationHandler gin.HandlerFunc
	ListConsultationsHandler  gin.HandlerFunc
	ServiceTypesHandler       gin.HandlerFunc
}

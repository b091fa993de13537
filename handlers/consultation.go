package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"legalform/config"
	"legalform/models"
	"legalform/services/consultation"
	"legalform/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxPageSize = 100

// ConsultationHandler exposes the consultation intake endpoints.
type ConsultationHandler struct {
	Service consultation.ConsultationService
}

func NewConsultationHandler(svc consultation.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{Service: svc}
}

// CreateConsultationHandler handles POST /api/consultation/.
// The response is returned as soon as the record is persisted; the
// notification runs in the background and never delays or fails the call.
func (h *ConsultationHandler) CreateConsultationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.ConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("CreateConsultation: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		var verr *consultation.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, verr.Fields)
			return
		}
		logger.Error("CreateConsultation: failed to persist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save consultation request", err.Error())
		return
	}

	c.JSON(http.StatusCreated, saved.View())
}

// ListConsultationsHandler handles GET /api/consultation/list/.
func (h *ConsultationHandler) ListConsultationsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(config.AppConfig.PageSize)))
	if err != nil || pageSize < 1 {
		pageSize = config.AppConfig.PageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	records, total, err := h.Service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.Error("ListConsultations: failed to fetch", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch consultation requests", err.Error())
		return
	}

	results := make([]models.ConsultationView, 0, len(records))
	for _, rec := range records {
		results = append(results, rec.View())
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     total,
		"page":      page,
		"page_size": pageSize,
		"results":   results,
	})
}

// ServiceTypesHandler handles GET /api/service-types/.
func (h *ConsultationHandler) ServiceTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ServiceTypes())
}

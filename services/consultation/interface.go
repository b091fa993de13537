package consultation

import (
	"context"

	consultationRepo "legalform/database/repository/consultation"
	"legalform/models"
	"legalform/services/notification"

	"go.uber.org/zap"
)

// ConsultationService handles consultation intake and retrieval.
type ConsultationService interface {
	Create(ctx context.Context, input models.ConsultationInput) (*models.ConsultationRequest, error)
	List(ctx context.Context, page, pageSize int) ([]models.ConsultationRequest, int64, error)
	ServiceTypes() []models.ServiceTypeOption
}

// Notifier is the dispatch capability the service needs; satisfied by
// *notification.Dispatcher.
type Notifier interface {
	Dispatch(req *models.ConsultationRequest) (notification.Report, error)
}

// DefaultConsultationService is the production implementation.
type DefaultConsultationService struct {
	Repo     consultationRepo.ConsultationRepository
	Notifier Notifier
	Logger   *zap.Logger
}

package consultationRepo

import (
	"context"

	"legalform/database"
	"legalform/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ConsultationRepository interface {
	Create(ctx context.Context, req models.ConsultationRequest) (*models.ConsultationRequest, error)
	List(ctx context.Context, page, pageSize int) ([]models.ConsultationRequest, int64, error)
}

type mongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo returns a ConsultationRepository backed by MongoDB.
func NewMongoConsultationRepo() ConsultationRepository {
	return &mongoConsultationRepo{
		coll: database.DB().Collection("consultation_requests"),
	}
}

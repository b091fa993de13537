package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"legalform/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new consultation request, assigning its ID and
// creation timestamp. The returned record is what was stored.
func (r *mongoConsultationRepo) Create(ctx context.Context, req models.ConsultationRequest) (*models.ConsultationRequest, error) {
	req.ID = uuid.New().String()
	req.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return nil, fmt.Errorf("insert consultation request: %w", err)
	}
	return &req, nil
}

// List returns one page of consultation requests ordered newest-first,
// together with the total record count. Ordering is stable regardless of
// the requested page.
func (r *mongoConsultationRepo) List(ctx context.Context, page, pageSize int) ([]models.ConsultationRequest, int64, error) {
	if page < 1 {
		page = 1
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count consultation requests: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list consultation requests: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.ConsultationRequest
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf("decode consultation requests: %w", err)
	}
	return records, total, nil
}

package consultation

import (
	"context"
	"fmt"

	"legalform/models"

	"go.uber.org/zap"
)

// Create validates the submission, persists it, and schedules the
// notification dispatch on a detached goroutine. The caller gets the
// stored record back as soon as it is durable; dispatch outcome is only
// ever observable through logs.
func (s *DefaultConsultationService) Create(ctx context.Context, input models.ConsultationInput) (*models.ConsultationRequest, error) {
	record, verr := validateInput(input)
	if verr != nil {
		return nil, verr
	}

	saved, err := s.Repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("persist consultation request: %w", err)
	}

	s.scheduleDispatch(saved)
	return saved, nil
}

// scheduleDispatch fires the notification in the background. The
// goroutine is never joined: best-effort, not guaranteed to complete if
// the process shuts down first.
func (s *DefaultConsultationService) scheduleDispatch(req *models.ConsultationRequest) {
	go func() {
		logger := s.logger()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Background dispatch panicked",
					zap.String("consultationID", req.ID),
					zap.Any("panic", r),
				)
			}
		}()

		report, err := s.Notifier.Dispatch(req)
		if err != nil {
			logger.Error("Background dispatch failed",
				zap.String("consultationID", req.ID),
				zap.Error(err),
			)
			return
		}
		if !report.Succeeded() {
			logger.Error("Background dispatch reached no recipients",
				zap.String("consultationID", req.ID),
				zap.Int("total", report.Total),
			)
		}
	}()
}

// List returns one newest-first page of consultation requests plus the
// total count.
func (s *DefaultConsultationService) List(ctx context.Context, page, pageSize int) ([]models.ConsultationRequest, int64, error) {
	records, total, err := s.Repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list consultation requests: %w", err)
	}
	return records, total, nil
}

// ServiceTypes returns the static service-type enumeration.
func (s *DefaultConsultationService) ServiceTypes() []models.ServiceTypeOption {
	return models.ServiceTypeChoices()
}

func (s *DefaultConsultationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

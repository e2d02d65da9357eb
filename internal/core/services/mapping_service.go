package services

import (
	"context"

	"go.uber.org/zap"

	"palmtec-registry/internal/adapters/persistence/repositories"
	"palmtec-registry/internal/core/domain"
	"palmtec-registry/internal/pkg/logger"
)

// MappingService searches and maintains serial-to-customer mappings
type MappingService struct {
	procRepo repositories.ProcedureRepository
}

// NewMappingService creates a new mapping service
func NewMappingService(procRepo repositories.ProcedureRepository) *MappingService {
	return &MappingService{procRepo: procRepo}
}

// Search returns one page of mappings matching the query
func (s *MappingService) Search(ctx context.Context, query domain.MappingQuery) (*domain.MappingPage, error) {
	return s.procRepo.GetSerialCustomerDetails(ctx, query)
}

// Create stores a new mapping
func (s *MappingService) Create(ctx context.Context, fields domain.MappingFields) (domain.Outcome, error) {
	out, err := s.procRepo.SaveSerialCustomerDetails(ctx, fields)
	if err != nil {
		return domain.Outcome{}, err
	}

	logger.Info("Customer mapping saved",
		zap.String("serial_number", fields.SerialNumber),
		zap.String("customer_code", fields.CustomerCode),
		zap.String("status", string(out.Status)),
	)
	return out, nil
}

// Update overwrites the mapping of an existing serial number
func (s *MappingService) Update(ctx context.Context, fields domain.MappingFields) (domain.Outcome, error) {
	out, err := s.procRepo.UpdateCustomerBySerial(ctx, fields)
	if err != nil {
		return domain.Outcome{}, err
	}

	logger.Info("Customer mapping updated",
		zap.String("serial_number", fields.SerialNumber),
		zap.String("status", string(out.Status)),
	)
	return out, nil
}

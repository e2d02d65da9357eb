package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"palmtec-registry/internal/adapters/persistence/repositories"
	"palmtec-registry/internal/core/domain"
	"palmtec-registry/internal/pkg/logger"
)

// Layouts of the date and time stamped onto device details
const (
	detailsDateLayout = "02 01 2006"
	detailsTimeLayout = "15:04:05"
)

// SerialService drives the serial number lifecycle through the stored procedures
type SerialService struct {
	serialRepo repositories.SerialRepository
	procRepo   repositories.ProcedureRepository
	now        func() time.Time
}

// NewSerialService creates a new serial number service
func NewSerialService(serialRepo repositories.SerialRepository, procRepo repositories.ProcedureRepository) *SerialService {
	return &SerialService{
		serialRepo: serialRepo,
		procRepo:   procRepo,
		now:        time.Now,
	}
}

// List returns every serial number ordered by creation date, oldest first.
// Records without a creation date sort before all others and keep their
// relative order.
func (s *SerialService) List(ctx context.Context) ([]domain.SerialSummary, error) {
	serials, err := s.serialRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(serials, func(i, j int) bool {
		a, b := serials[i].CreateDate, serials[j].CreateDate
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return a.Before(*b)
	})

	return lo.Map(serials, func(sn domain.SerialNumber, _ int) domain.SerialSummary {
		return domain.SerialSummary{
			SerialNumber: sn.SerialNumber,
			IsApproved:   sn.IsApproved,
			IsAllocated:  sn.IsAllocated,
		}
	}), nil
}

// Create registers a UPI-Plus serial number after validating its format
func (s *SerialService) Create(ctx context.Context, serial string) (domain.Outcome, error) {
	cleaned, err := domain.NormalizeSerialNumber(serial)
	if err != nil {
		return domain.Outcome{}, err
	}

	out, err := s.procRepo.SaveSerialNumber(ctx, cleaned, domain.CategoryUPIPlus)
	if err != nil {
		return domain.Outcome{}, err
	}

	logger.Info("Serial number saved",
		zap.String("serial_number", cleaned),
		zap.String("status", string(out.Status)),
	)
	return out, nil
}

// CreateUPIPro registers a UPI-Pro serial number. These are created
// approved and already distributed, and only their presence is checked.
func (s *SerialService) CreateUPIPro(ctx context.Context, serial string) (domain.Outcome, error) {
	cleaned, err := requireSerial(serial)
	if err != nil {
		return domain.Outcome{}, err
	}

	out, err := s.procRepo.SaveUPIProSerialNumber(ctx, cleaned, domain.CategoryUPIPro, 1, domain.AllocationDistributed)
	if err != nil {
		return domain.Outcome{}, err
	}

	logger.Info("UPI-Pro serial number saved",
		zap.String("serial_number", cleaned),
		zap.String("status", string(out.Status)),
	)
	return out, nil
}

// Approve marks a serial number approved
func (s *SerialService) Approve(ctx context.Context, serial string) (domain.Outcome, error) {
	cleaned, err := requireSerial(serial)
	if err != nil {
		return domain.Outcome{}, err
	}
	return s.procRepo.UpdateSerialApproval(ctx, cleaned, 1)
}

// Allocate marks a serial number distributed
func (s *SerialService) Allocate(ctx context.Context, serial string) (domain.Outcome, error) {
	cleaned, err := requireSerial(serial)
	if err != nil {
		return domain.Outcome{}, err
	}
	return s.procRepo.UpdateSerialAllocation(ctx, cleaned, domain.AllocationDistributed)
}

// Deactivate retires a serial number. The store decides whether that is allowed.
func (s *SerialService) Deactivate(ctx context.Context, serial string) (domain.Outcome, error) {
	cleaned, err := requireSerial(serial)
	if err != nil {
		return domain.Outcome{}, err
	}

	out, err := s.procRepo.DeactivateSerialNumber(ctx, cleaned)
	if err != nil {
		return domain.Outcome{}, err
	}

	if out.Status == domain.StatusDenied {
		logger.Warn("Serial number deactivation denied", zap.String("serial_number", cleaned))
	}
	return out, nil
}

// FetchAndReserve takes the next approved, unallocated serial number and
// marks it reserved. The two store calls are not atomic; exclusivity is
// left to the store.
func (s *SerialService) FetchAndReserve(ctx context.Context) (*domain.ReservedSerial, error) {
	// 1. Find a candidate
	serial, found, err := s.procRepo.GetSingleUnallocatedApprovedSerial(ctx)
	if err != nil {
		return nil, err
	}
	if serial == "" {
		if found.OK() {
			found.Status = domain.StatusNotFound
		}
		return &domain.ReservedSerial{Outcome: found}, nil
	}

	// 2. Reserve it
	reserved, err := s.procRepo.UpdateSerialAllocation(ctx, serial, domain.AllocationReserved)
	if err != nil {
		return nil, err
	}

	logger.Info("Serial number reserved",
		zap.String("serial_number", serial),
		zap.String("status", string(reserved.Status)),
	)

	return &domain.ReservedSerial{Serial: serial, Outcome: reserved}, nil
}

// DeviceDetails returns the device row for a serial number stamped with
// the current server date and time, or domain.ErrNotFound
func (s *SerialService) DeviceDetails(ctx context.Context, serial string) (domain.DeviceDetails, error) {
	cleaned, err := requireSerial(serial)
	if err != nil {
		return nil, err
	}

	details, err := s.procRepo.GetDeviceDetails(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	now := s.now()
	details["date"] = now.Format(detailsDateLayout)
	details["time"] = now.Format(detailsTimeLayout)
	return details, nil
}

func requireSerial(serial string) (string, error) {
	cleaned := strings.TrimSpace(serial)
	if cleaned == "" {
		return "", domain.ErrSerialNumberRequired
	}
	return cleaned, nil
}

package repositories

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SerialRepository reads the serialdata table directly
type SerialRepository interface {
	List(ctx context.Context) ([]domain.SerialNumber, error)
	CountAvailable(ctx context.Context) (int64, error)
}

// ProcedureRepository invokes the stored procedures that own the serial
// number lifecycle and customer mappings. Each method is one CALL; the
// returned Outcome carries the procedure's status and message OUT
// parameters. A non-nil error means the call itself failed.
type ProcedureRepository interface {
	SaveSerialNumber(ctx context.Context, serial, category string) (domain.Outcome, error)
	SaveUPIProSerialNumber(ctx context.Context, serial, category string, approved int, allocated domain.Allocation) (domain.Outcome, error)
	UpdateSerialApproval(ctx context.Context, serial string, approved int) (domain.Outcome, error)
	UpdateSerialAllocation(ctx context.Context, serial string, allocated domain.Allocation) (domain.Outcome, error)
	GetSingleUnallocatedApprovedSerial(ctx context.Context) (string, domain.Outcome, error)
	GetDeviceDetails(ctx context.Context, serial string) (domain.DeviceDetails, error)
	DeactivateSerialNumber(ctx context.Context, serial string) (domain.Outcome, error)
	GetSerialCustomerDetails(ctx context.Context, query domain.MappingQuery) (*domain.MappingPage, error)
	SaveSerialCustomerDetails(ctx context.Context, fields domain.MappingFields) (domain.Outcome, error)
	UpdateCustomerBySerial(ctx context.Context, fields domain.MappingFields) (domain.Outcome, error)
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"palmtec-registry/internal/core/domain"
	"palmtec-registry/internal/pkg/metrics"
)

// Stored procedure names
const (
	procSaveSerial          = "save_serial_number"
	procSaveUPIProSerial    = "save_upi_pro_serial_number"
	procUpdateApproval      = "update_serial_number_approval"
	procUpdateAllocation    = "update_serial_number_allocate"
	procGetUnallocated      = "get_single_unallocated_approved_serial"
	procGetDeviceDetails    = "get_device_details_by_serial"
	procDeactivateSerial    = "deactivate_serial_number"
	procGetCustomerDetails  = "get_serial_customer_details"
	procSaveCustomerDetails = "save_serial_customer_details"
	procUpdateCustomer      = "update_customer_by_serial"
)

// Session variables bound to OUT parameters. They live on the MySQL
// connection, so every CALL that uses them runs on a pinned connection.
const (
	outSerial     = "@p_serial"
	outStatus     = "@p_status"
	outMessage    = "@p_message"
	outTotalCount = "@p_total_count"
)

// procedureRepository implements ProcedureRepository on MySQL
type procedureRepository struct {
	db *gorm.DB
}

// NewProcedureRepository creates a new stored procedure repository
func NewProcedureRepository(db *gorm.DB) ProcedureRepository {
	return &procedureRepository{db: db}
}

// SaveSerialNumber calls save_serial_number(serial, category, OUT status, OUT message)
func (r *procedureRepository) SaveSerialNumber(ctx context.Context, serial, category string) (domain.Outcome, error) {
	return r.callWithOutcome(ctx, procSaveSerial, serial, category)
}

// SaveUPIProSerialNumber calls save_upi_pro_serial_number(serial, category, approved, allocated, OUT status, OUT message)
func (r *procedureRepository) SaveUPIProSerialNumber(ctx context.Context, serial, category string, approved int, allocated domain.Allocation) (domain.Outcome, error) {
	return r.callWithOutcome(ctx, procSaveUPIProSerial, serial, category, approved, int(allocated))
}

// UpdateSerialApproval calls update_serial_number_approval(serial, approved, OUT status, OUT message)
func (r *procedureRepository) UpdateSerialApproval(ctx context.Context, serial string, approved int) (domain.Outcome, error) {
	return r.callWithOutcome(ctx, procUpdateApproval, serial, approved)
}

// UpdateSerialAllocation calls update_serial_number_allocate(serial, allocated, OUT status, OUT message)
func (r *procedureRepository) UpdateSerialAllocation(ctx context.Context, serial string, allocated domain.Allocation) (domain.Outcome, error) {
	return r.callWithOutcome(ctx, procUpdateAllocation, serial, int(allocated))
}

// DeactivateSerialNumber calls deactivate_serial_number(serial, OUT status, OUT message)
func (r *procedureRepository) DeactivateSerialNumber(ctx context.Context, serial string) (domain.Outcome, error) {
	return r.callWithOutcome(ctx, procDeactivateSerial, serial)
}

// GetSingleUnallocatedApprovedSerial calls
// get_single_unallocated_approved_serial(OUT serial, OUT status, OUT message).
// The returned serial is empty when the procedure found none.
func (r *procedureRepository) GetSingleUnallocatedApprovedSerial(ctx context.Context) (string, domain.Outcome, error) {
	var serial, status, message sql.NullString

	err := r.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		if err := tx.Exec(callSQL(procGetUnallocated, 0, outSerial, outStatus, outMessage)).Error; err != nil {
			return err
		}
		return tx.Raw(selectSQL(outSerial, outStatus, outMessage)).Row().Scan(&serial, &status, &message)
	})
	if err != nil {
		return "", domain.Outcome{}, r.failed(procGetUnallocated, err)
	}

	out := r.outcome(procGetUnallocated, status, message)
	return strings.TrimSpace(serial.String), out, nil
}

// GetDeviceDetails calls get_device_details_by_serial(serial) and returns
// its first row keyed by column name, or domain.ErrNotFound
func (r *procedureRepository) GetDeviceDetails(ctx context.Context, serial string) (domain.DeviceDetails, error) {
	rows, err := r.db.WithContext(ctx).Raw(callSQL(procGetDeviceDetails, 1), serial).Rows()
	if err != nil {
		return nil, r.failed(procGetDeviceDetails, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, r.failed(procGetDeviceDetails, err)
		}
		return nil, domain.ErrNotFound
	}

	details, err := scanDetails(rows)
	if err != nil {
		return nil, r.failed(procGetDeviceDetails, err)
	}
	return details, nil
}

// GetSerialCustomerDetails calls get_serial_customer_details with the 13
// search parameters and reads the total count from its OUT parameter
func (r *procedureRepository) GetSerialCustomerDetails(ctx context.Context, q domain.MappingQuery) (*domain.MappingPage, error) {
	var serial interface{}
	if q.SerialNumber != nil {
		serial = *q.SerialNumber
	}

	args := []interface{}{
		serial,
		q.CustomerCode,
		q.CustomerName,
		q.Company,
		q.DeviceType,
		q.FromDate,
		q.ToDate,
		q.ApprovedStatus,
		q.SearchText,
		q.PageNumber,
		q.PageSize,
		q.SortIndex,
		q.SortDirection,
	}

	page := &domain.MappingPage{Rows: []domain.CustomerMapping{}}

	err := r.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		rows, err := tx.Raw(callSQL(procGetCustomerDetails, len(args), outTotalCount), args...).Rows()
		if err != nil {
			return err
		}

		for rows.Next() {
			var m domain.CustomerMapping
			if err := rows.Scan(
				&m.SerialNumber,
				&m.UniqueIdentifier,
				&m.CustomerCode,
				&m.CustomerName,
				&m.Company,
				&m.DeviceType,
				&m.IsApproved,
				&m.CreatedOn,
				&m.ModifiedOn,
				&m.LicenseURL,
				&m.VersionDetails,
			); err != nil {
				rows.Close()
				return err
			}
			page.Rows = append(page.Rows, m)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		// The result set must be drained before the OUT variable is readable
		if err := rows.Close(); err != nil {
			return err
		}

		var total sql.NullInt64
		if err := tx.Raw(selectSQL(outTotalCount)).Row().Scan(&total); err != nil {
			return err
		}
		page.TotalCount = total.Int64
		return nil
	})
	if err != nil {
		return nil, r.failed(procGetCustomerDetails, err)
	}

	return page, nil
}

// SaveSerialCustomerDetails calls save_serial_customer_details. Argument
// order: serial, uniqueIdentifier, customerCode, customerName, company,
// deviceType, licenseURL, versionDetails.
func (r *procedureRepository) SaveSerialCustomerDetails(ctx context.Context, f domain.MappingFields) (domain.Outcome, error) {
	return r.callWithOutcome(ctx, procSaveCustomerDetails,
		f.SerialNumber,
		f.UniqueIdentifier,
		f.CustomerCode,
		f.CustomerName,
		f.Company,
		f.DeviceType,
		f.LicenseURL,
		f.VersionDetails,
	)
}

// UpdateCustomerBySerial calls update_customer_by_serial. Argument order
// differs from the save procedure: serial, customerCode, uniqueIdentifier, ...
func (r *procedureRepository) UpdateCustomerBySerial(ctx context.Context, f domain.MappingFields) (domain.Outcome, error) {
	return r.callWithOutcome(ctx, procUpdateCustomer,
		f.SerialNumber,
		f.CustomerCode,
		f.UniqueIdentifier,
		f.CustomerName,
		f.Company,
		f.DeviceType,
		f.LicenseURL,
		f.VersionDetails,
	)
}

// callWithOutcome runs a procedure whose last two parameters are the
// status and message OUT parameters
func (r *procedureRepository) callWithOutcome(ctx context.Context, name string, args ...interface{}) (domain.Outcome, error) {
	var status, message sql.NullString

	err := r.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		if err := tx.Exec(callSQL(name, len(args), outStatus, outMessage), args...).Error; err != nil {
			return err
		}
		return tx.Raw(selectSQL(outStatus, outMessage)).Row().Scan(&status, &message)
	})
	if err != nil {
		return domain.Outcome{}, r.failed(name, err)
	}

	return r.outcome(name, status, message), nil
}

func (r *procedureRepository) outcome(name string, status, message sql.NullString) domain.Outcome {
	out := domain.Outcome{
		Status:  domain.ParseStatus(status.String),
		Message: message.String,
	}
	metrics.ProcedureOutcomes.WithLabelValues(name, string(out.Status)).Inc()
	return out
}

func (r *procedureRepository) failed(name string, err error) error {
	metrics.ProcedureFailures.WithLabelValues(name).Inc()
	return fmt.Errorf("call %s: %w", name, err)
}

// callSQL builds "CALL name(?, ?, @out...)" with in placeholders
func callSQL(name string, in int, outs ...string) string {
	params := lo.Times(in, func(int) string { return "?" })
	params = append(params, outs...)
	return "CALL " + name + "(" + strings.Join(params, ", ") + ")"
}

// selectSQL builds "SELECT @a, @b"
func selectSQL(vars ...string) string {
	return "SELECT " + strings.Join(vars, ", ")
}

// scanDetails scans the current row into a column-keyed map
func scanDetails(rows *sql.Rows) (domain.DeviceDetails, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	details := make(domain.DeviceDetails, len(columns))
	for i, column := range columns {
		if b, ok := values[i].([]byte); ok {
			details[column] = string(b)
			continue
		}
		details[column] = values[i]
	}
	return details, nil
}

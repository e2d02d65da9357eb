package domain

import "time"

// DefaultRole is assigned to accounts created without an explicit role
const DefaultRole = "employee"

// Serial number categories passed to the save procedures
const (
	CategoryUPIPlus = "UPIPLUS"
	CategoryUPIPro  = "UPIPRO"
)

// Allocation is the value written to a serial number's isAllocated flag
type Allocation int

const (
	AllocationNone        Allocation = 0
	AllocationReserved    Allocation = 1 // handed out by fetch-and-reserve
	AllocationDistributed Allocation = 2 // allocated explicitly
)

// SerialNumber is one row of the serialdata table
type SerialNumber struct {
	SerialNumber string
	IsApproved   *int
	IsAllocated  *int
	CreateDate   *time.Time
	ModifiedDate *time.Time
}

// SerialSummary is the projection returned by the list endpoint.
// The creation date is used for ordering only and is not part of it.
type SerialSummary struct {
	SerialNumber string `json:"serialnumber"`
	IsApproved   *int   `json:"isapproved"`
	IsAllocated  *int   `json:"isallocated"`
}

// DeviceDetails is the dynamic row returned by the device details procedure
type DeviceDetails map[string]interface{}

// CustomerMapping is one row of the mapping search result
type CustomerMapping struct {
	SerialNumber     string     `json:"upiDeviceSerialNumber"`
	UniqueIdentifier *string    `json:"uniqueIdentifier"`
	CustomerCode     *int64     `json:"customerCode"`
	CustomerName     *string    `json:"customerName"`
	Company          *string    `json:"company"`
	DeviceType       *string    `json:"devicetype"`
	IsApproved       *int       `json:"isApproved"`
	CreatedOn        *time.Time `json:"createdOn"`
	ModifiedOn       *time.Time `json:"modifiedOn"`
	LicenseURL       *string    `json:"cLicenseURL"`
	VersionDetails   *string    `json:"versionDetails"`
}

// MappingFields carries the eight values written by the create and update
// mapping procedures
type MappingFields struct {
	SerialNumber     string
	UniqueIdentifier string
	CustomerCode     string
	CustomerName     string
	Company          string
	DeviceType       string
	LicenseURL       string
	VersionDetails   string
}

// MappingQuery holds the search filters, paging and sort parameters
type MappingQuery struct {
	SerialNumber   *string
	CustomerCode   int64
	CustomerName   string
	Company        string
	DeviceType     string
	FromDate       string
	ToDate         string
	ApprovedStatus int
	SearchText     string
	PageNumber     int
	PageSize       int
	SortIndex      int
	SortDirection  int
}

// Mapping search defaults for absent parameters
const (
	DefaultFromDate      = "2020-01-01"
	DefaultToDate        = "2099-12-31"
	AnyApprovedStatus    = -1
	DefaultPageNumber    = 0
	DefaultPageSize      = 10
	DefaultSortIndex     = 1
	DefaultSortDirection = 0
	DefaultCustomerCode  = 0
)

// NewMappingQuery returns a query with every default applied
func NewMappingQuery() MappingQuery {
	return MappingQuery{
		CustomerCode:   DefaultCustomerCode,
		FromDate:       DefaultFromDate,
		ToDate:         DefaultToDate,
		ApprovedStatus: AnyApprovedStatus,
		PageNumber:     DefaultPageNumber,
		PageSize:       DefaultPageSize,
		SortIndex:      DefaultSortIndex,
		SortDirection:  DefaultSortDirection,
	}
}

// MappingPage is one page of search results with the total match count
type MappingPage struct {
	Rows       []CustomerMapping
	TotalCount int64
}

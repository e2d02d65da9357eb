package domain

import "errors"

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("resource not found")

// Serial number errors
var (
	ErrSerialNumberRequired = errors.New("serial number is required")
	ErrInvalidSerialNumber  = errors.New("serial number must follow pattern: YYYYMM{AMP|API}XXXXXXB (e.g., 202505AMP123456B)")
)

package inventory

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNoInventoryFound = errors.New("no inventory records found")
)

package pantry

import "errors"

// Domain errors for pantry operations

var (
	ErrNameRequired     = errors.New("pantry item name is required")
	ErrNameTooLong      = errors.New("pantry item name must not exceed 200 characters")
	ErrNegativeQuantity = errors.New("pantry item quantity cannot be negative")
	ErrInvalidCategory  = errors.New("unknown pantry category")

	ErrItemNotFound  = errors.New("pantry item not found")
	ErrNotItemOwner  = errors.New("only the item owner can perform this action")
	ErrDuplicateItem = errors.New("pantry already contains this ingredient")
)

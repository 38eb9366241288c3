package domain

import "errors"

var (
	// ErrFarmNotFound covers both a missing farm and a farm that exists
	// but belongs to a different business.
	ErrFarmNotFound = errors.New("farm not found")

	// ErrNoProduction is returned when expected bushels are zero or
	// negative, making break-even price undefined.
	ErrNoProduction = errors.New("farm has no expected production")

	// ErrNoPriceBasis is returned when there is neither an insurance
	// projected price nor a current market price to center the price
	// axis on.
	ErrNoPriceBasis = errors.New("no price basis for scenario axis")
)

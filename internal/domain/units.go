package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	Unit_Gallon Unit = "GAL"
	Unit_Quart  Unit = "QT"
	Unit_Pint   Unit = "PT"
	Unit_FlOz   Unit = "OZ"
	Unit_Pound  Unit = "LB"
	Unit_DryOz  Unit = "OZ_WT"
)

func NewUnit(s string) (Unit, error) {
	switch Unit(strings.ToUpper(s)) {
	case Unit_Gallon:
		return Unit_Gallon, nil
	case Unit_Quart:
		return Unit_Quart, nil
	case Unit_Pint:
		return Unit_Pint, nil
	case Unit_FlOz:
		return Unit_FlOz, nil
	case Unit_Pound:
		return Unit_Pound, nil
	case Unit_DryOz:
		return Unit_DryOz, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// ounces per unit, within each family. 1 GAL = 4 QT = 8 PT = 128 OZ,
// 1 LB = 16 OZ.
var volumeOunces = map[Unit]decimal.Decimal{
	Unit_Gallon: decimal.NewFromInt(128),
	Unit_Quart:  decimal.NewFromInt(32),
	Unit_Pint:   decimal.NewFromInt(16),
	Unit_FlOz:   decimal.NewFromInt(1),
}

var weightOunces = map[Unit]decimal.Decimal{
	Unit_Pound: decimal.NewFromInt(16),
	Unit_DryOz: decimal.NewFromInt(1),
}

// ConversionFactor returns the multiplier that converts a quantity in
// `from` units into `to` units. Both units must be in the same family;
// converting a volume to a weight has no fixed factor and is rejected.
func ConversionFactor(from Unit, to Unit) (decimal.Decimal, error) {
	if fromOz, ok := volumeOunces[from]; ok {
		toOz, ok := volumeOunces[to]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot convert volume unit %s to %s", from, to)
		}
		return fromOz.Div(toOz), nil
	}
	if fromOz, ok := weightOunces[from]; ok {
		toOz, ok := weightOunces[to]
		if !ok {
			return decimal.Zero, fmt.Errorf("cannot convert weight unit %s to %s", from, to)
		}
		return fromOz.Div(toOz), nil
	}
	return decimal.Zero, fmt.Errorf("unknown unit %s", from)
}

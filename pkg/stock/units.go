package stock

// ConvertUnits converts an amount between two units. Only identity
// conversions are defined: equal units pass the amount through, any
// other pair is unconvertible and returns ok=false. Callers decide
// their own policy for unconvertible pairs (availability is optimistic,
// consumption refuses to deduct). Real volumetric or mass conversion is
// deliberately not implemented.
func ConvertUnits(amount float64, fromUnit, toUnit string) (float64, bool) {
	if fromUnit == toUnit {
		return amount, true
	}
	return 0, false
}

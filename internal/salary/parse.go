package salary

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// WorkingHoursPerYear converts hourly rates to yearly amounts.
const WorkingHoursPerYear = 2080

// Units accepted by YearlyBound.
const (
	UnitYear = "year"
	UnitHour = "hour"
)

var rangePattern = regexp.MustCompile(
	`(?i)\$\s*(?P<lower>\d+(?:,\d{3})*(?:\.\d+)?k?)` +
		`(?:\s*/\s*(?P<lower_unit>hr|hour|year|yr))?` +
		`(?:\s*(?:to|-|–|—)\s*\$\s*(?P<upper>\d+(?:,\d{3})*(?:\.\d+)?k?)` +
		`(?:\s*/\s*(?P<upper_unit>hr|hour|year|yr))?)?`,
)

// Parse finds the first dollar amount or range in text. A text without any dollar amount
// yields (nil, nil).
func Parse(text string) (*Range, error) {
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	group := func(name string) string {
		return m[rangePattern.SubexpIndex(name)]
	}

	lowerUnit, upperUnit := group("lower_unit"), group("upper_unit")
	// "$50-$60/hr" states the unit once for both bounds.
	if lowerUnit == "" {
		lowerUnit = upperUnit
	}

	lower, err := optionalBound(group("lower"), lowerUnit)
	if err != nil {
		return nil, err
	}
	upper, err := optionalBound(group("upper"), upperUnit)
	if err != nil {
		return nil, err
	}
	return FromMaybeBounds(lower, upper)
}

// FromStructured builds a Range from pre-parsed numbers, such as JSON-LD baseSalary values.
// unit is matched case-insensitively against year and hour spellings.
func FromStructured(lower, upper *float64, unit string) (*Range, error) {
	canonical, ok := canonicalUnit(unit)
	if !ok {
		return nil, &BoundError{Unit: unit, Message: "unrecognized unit"}
	}
	convert := func(v *float64) (*int, error) {
		if v == nil {
			return nil, nil
		}
		if *v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return nil, &BoundError{Value: strconv.FormatFloat(*v, 'f', -1, 64), Unit: unit, Message: "not a non-negative number"}
		}
		n, err := annualize(*v, canonical)
		if err != nil {
			err.Value, err.Unit = strconv.FormatFloat(*v, 'f', -1, 64), unit
			return nil, err
		}
		return &n, nil
	}
	lo, err := convert(lower)
	if err != nil {
		return nil, err
	}
	hi, err := convert(upper)
	if err != nil {
		return nil, err
	}
	return FromMaybeBounds(lo, hi)
}

// YearlyBound converts a textual amount such as "150,000", "95.5k" or "60" in the given
// unit to a yearly integer amount.
func YearlyBound(value, unit string) (int, error) {
	canonical, ok := canonicalUnit(unit)
	if !ok {
		return 0, &BoundError{Value: value, Unit: unit, Message: "unrecognized unit"}
	}

	raw := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	multiplier := 1.0
	if strings.HasSuffix(raw, "k") || strings.HasSuffix(raw, "K") {
		raw = raw[:len(raw)-1]
		multiplier = 1000
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &BoundError{Value: value, Unit: unit, Message: "malformed number", Cause: err}
	}
	if n < 0 {
		return 0, &BoundError{Value: value, Unit: unit, Message: "negative amount"}
	}
	yearly, boundErr := annualize(n*multiplier, canonical)
	if boundErr != nil {
		boundErr.Value, boundErr.Unit = value, unit
		return 0, boundErr
	}
	return yearly, nil
}

func optionalBound(value, unit string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	if unit == "" {
		unit = UnitYear
	}
	n, err := YearlyBound(value, unit)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// maxYearly caps annualized amounts so they convert to int without overflow.
const maxYearly = math.MaxInt32

func annualize(v float64, unit string) (int, *BoundError) {
	if unit == UnitHour {
		v *= WorkingHoursPerYear
	}
	v = math.Round(v)
	if v >= maxYearly {
		return 0, &BoundError{Message: "amount out of range"}
	}
	return int(v), nil
}

func canonicalUnit(unit string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "year", "yr", "yearly", "annual":
		return UnitYear, true
	case "hour", "hr", "hourly":
		return UnitHour, true
	default:
		return "", false
	}
}

package salary

import "fmt"

// Range is an annualized salary. A nil Range width means a single point amount.
type Range struct {
	Lower int  `yaml:"lower" validate:"gte=0"`
	Range *int `yaml:"range,omitempty" validate:"omitempty,gte=0"`
}

// FromBounds builds a Range from explicit lower and upper bounds.
func FromBounds(lower, upper int) (*Range, error) {
	if lower > upper {
		return nil, &RangeOrderError{Lower: lower, Upper: upper}
	}
	if lower < 0 {
		return nil, &BoundError{Value: fmt.Sprint(lower), Unit: UnitYear, Message: "negative bound"}
	}
	width := upper - lower
	return &Range{Lower: lower, Range: &width}, nil
}

// Amount builds a point Range with no width.
func Amount(amount int) *Range {
	return &Range{Lower: amount}
}

// FromMaybeBounds combines optional bounds. Both present yields a range, only a lower bound
// yields a point amount, and a missing lower bound yields no value.
func FromMaybeBounds(lower, upper *int) (*Range, error) {
	switch {
	case lower != nil && upper != nil:
		return FromBounds(*lower, *upper)
	case lower != nil:
		return Amount(*lower), nil
	default:
		return nil, nil
	}
}

// Upper returns the upper bound, or false for a point amount.
func (r Range) Upper() (int, bool) {
	if r.Range == nil {
		return 0, false
	}
	return r.Lower + *r.Range, true
}

// String formats the range as "$150,000 - $200,000" or "$150,000".
func (r Range) String() string {
	if upper, ok := r.Upper(); ok {
		return fmt.Sprintf("$%s - $%s", groupThousands(r.Lower), groupThousands(upper))
	}
	return "$" + groupThousands(r.Lower)
}

func groupThousands(n int) string {
	s := fmt.Sprint(n)
	var out []byte
	if n < 0 {
		out = append(out, '-')
		s = s[1:]
	}
	if len(s) <= 3 {
		return string(append(out, s...))
	}
	sign := len(out)
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > sign {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

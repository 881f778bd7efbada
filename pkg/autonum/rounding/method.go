package rounding

// Method identifies a rounding method by its single-letter code
type Method string

// Rounding methods
const (
	HalfUpSymmetric    Method = "S"   // half away from zero
	HalfUpAsymmetric   Method = "A"   // half toward +infinity
	HalfDownSymmetric  Method = "s"   // half toward zero
	HalfDownAsymmetric Method = "a"   // half toward -infinity
	HalfEven           Method = "B"   // banker's rounding
	Up                 Method = "U"   // away from zero
	Down               Method = "D"   // toward zero
	Ceiling            Method = "C"   // toward +infinity
	Floor              Method = "F"   // toward -infinity
	NearestFive        Method = "N05" // nearest 0.05
	SwissFive          Method = "CHF" // nearest 0.05, Swiss cash rounding
	UpFive             Method = "U05" // next 0.05 toward +infinity
	DownFive           Method = "D05" // next 0.05 toward -infinity
)

var allMethods = []Method{
	HalfUpSymmetric, HalfUpAsymmetric, HalfDownSymmetric, HalfDownAsymmetric,
	HalfEven, Up, Down, Ceiling, Floor,
	NearestFive, SwissFive, UpFive, DownFive,
}

// Methods returns every supported method in catalog order
func Methods() []Method {
	out := make([]Method, len(allMethods))
	copy(out, allMethods)
	return out
}

// IsValid reports whether m is a supported method
func (m Method) IsValid() bool {
	for _, known := range allMethods {
		if m == known {
			return true
		}
	}
	return false
}

// IsFiveCent reports whether m rounds to a 0.05 step
func (m Method) IsFiveCent() bool {
	switch m {
	case NearestFive, SwissFive, UpFive, DownFive:
		return true
	}
	return false
}

// FiveCentPlaces is the fixed precision of the 0.05-step methods
const FiveCentPlaces = 2

// LimitPolicy decides what happens to values outside [min, max]
type LimitPolicy string

// Limit policies
const (
	LimitStrict  LimitPolicy = ""
	LimitCeiling LimitPolicy = "ceiling"
	LimitFloor   LimitPolicy = "floor"
	LimitIgnore  LimitPolicy = "ignore"
)

// IsValid reports whether p is a known policy
func (p LimitPolicy) IsValid() bool {
	switch p {
	case LimitStrict, LimitCeiling, LimitFloor, LimitIgnore:
		return true
	}
	return false
}

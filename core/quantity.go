package core

import "strconv"

// Quantity is a derived numeric result shown next to a figure.
type Quantity struct {
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`
	Precision int     `json:"-"` // digits after the decimal point; negative means %e with 3 digits
}

// Formatted returns the value with its unit, e.g. "54.61 kN".
func (q Quantity) Formatted() string {
	var s string
	if q.Precision < 0 {
		s = strconv.FormatFloat(q.Value, 'e', 3, 64)
	} else {
		s = strconv.FormatFloat(q.Value, 'f', q.Precision, 64)
	}
	if q.Unit != "" {
		s += " " + q.Unit
	}
	return s
}

func (q Quantity) String() string {
	return q.Symbol + " = " + q.Formatted()
}

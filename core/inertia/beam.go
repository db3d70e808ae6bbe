package inertia

// Beam is simply supported at both ends and carries a point load at midspan.
type Beam struct {
	Length float64 `json:"length"` // [mm]
	Load   float64 `json:"load"`   // [N]
}

// StandardBeam is the 5 m beam with a 5 kN midspan load used on the deflections page.
var StandardBeam = Beam{Length: 5e3, Load: 5e3}

// Deflection at x for modulus E [MPa] and second moment I [mm⁴]; negative is downwards.
func (b Beam) Deflection(x, E, I float64) float64 {
	if x > b.Length/2 {
		x = b.Length - x
	}
	return -b.Load * x * (3*b.Length*b.Length - 4*x*x) / (48 * E * I)
}

// Package resonance superposes sinusoidal signals.
package resonance

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/numeric"
)

const samples = 1000

// Duration is the length of the sampled time window [s].
const Duration = 6*math.Pi + 0.1

// Times returns the sample instants shared by every figure.
func Times() []float64 {
	return numeric.Linspace(0, Duration, samples)
}

// Signal is A·sin(ω·t).
type Signal struct {
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"` // ω [rad/s]
}

func (s Signal) At(t float64) float64 {
	return s.Amplitude * math.Sin(s.Frequency*t)
}

func (s Signal) Sample(ts []float64) []float64 {
	return numeric.Map(ts, s.At)
}

// Superpose sums the signals at every instant in ts.
func Superpose(ts []float64, signals ...Signal) []float64 {
	sum := make([]float64, len(ts))
	for _, s := range signals {
		for i, t := range ts {
			sum[i] += s.At(t)
		}
	}
	return sum
}

type Input struct {
	Freq1 float64 `json:"freq1" query:"freq1" validate:"slider=resonance.freq1"` // [rad/s]
	Freq2 float64 `json:"freq2" query:"freq2" validate:"slider=resonance.freq2"` // [rad/s]
}

// DefaultInput holds the initial slider positions.
func DefaultInput() Input {
	p := core.MustPage("resonance")
	return Input{Freq1: p.Default("freq1"), Freq2: p.Default("freq2")}
}

func (in Input) Validate(validate *validator.Validate) error {
	return validate.Struct(in)
}

// Signals are the two inputs as drawn on their own.
func (in Input) Signals() (Signal, Signal) {
	return Signal{Amplitude: 1.2, Frequency: in.Freq1}, Signal{Amplitude: 0.8, Frequency: in.Freq2}
}

// Components are the unit amplitude signals that get superposed.
func (in Input) Components() []Signal {
	return []Signal{{Amplitude: 1, Frequency: in.Freq1}, {Amplitude: 1, Frequency: in.Freq2}}
}

// BeatFrequency is the envelope frequency |ω1 - ω2| of the superposition.
func (in Input) BeatFrequency() float64 {
	return math.Abs(in.Freq1 - in.Freq2)
}

type Solution struct {
	Input Input   `json:"input"`
	Beat  float64 `json:"beat_frequency"` // [rad/s]
	Peak  float64 `json:"peak"`           // largest |sum| over the window
}

func Solve(in Input) Solution {
	sol := Solution{Input: in, Beat: in.BeatFrequency()}
	for _, y := range Superpose(Times(), in.Components()...) {
		sol.Peak = math.Max(sol.Peak, math.Abs(y))
	}
	return sol
}

func (s Solution) Quantities() []core.Quantity {
	q := []core.Quantity{
		{Name: "Beat frequency", Symbol: "|ω1 - ω2|", Value: s.Beat, Unit: "rad/s", Precision: 0},
		{Name: "Peak amplitude", Symbol: "max|y|", Value: s.Peak, Precision: 2},
	}
	if s.Beat > 0 {
		q = append(q, core.Quantity{Name: "Beat period", Symbol: "Tb", Value: 2 * math.Pi / s.Beat, Unit: "s", Precision: 2})
	}
	return q
}

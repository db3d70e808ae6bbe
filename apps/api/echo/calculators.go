package echoapi

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/cable"
	"github.com/trezcool/swk211/core/centroid"
	"github.com/trezcool/swk211/core/friction"
	"github.com/trezcool/swk211/core/inertia"
	"github.com/trezcool/swk211/core/plot"
	"github.com/trezcool/swk211/core/resonance"
	"github.com/trezcool/swk211/core/vibration"
)

type (
	namedFigure struct {
		Name   string      `json:"name"`
		Figure plot.Figure `json:"figure"`
	}

	// result is what a page shows for one set of slider values.
	result struct {
		Page       string          `json:"page"`
		Input      interface{}     `json:"input"`
		Solution   interface{}     `json:"solution,omitempty"`
		Quantities []core.Quantity `json:"quantities,omitempty"`
		Answer     []string        `json:"answer,omitempty"`
		Figures    []namedFigure   `json:"figures,omitempty"`
	}

	// calculator reads the slider values from the query string and solves the page.
	// The returned result always carries the input, even with an error.
	calculator func(ctx echo.Context) (*result, error)

	input interface {
		Validate(validate *validator.Validate) error
	}
)

var calculators = map[string]calculator{
	"cables":      solveCables,
	"deflections": solveDeflections,
	"friction":    solveFriction,
	"centroids":   solveCentroids,
	"resonance":   solveResonance,
	"vibrations":  solveVibrations,
}

func (res *result) figure(name string) (plot.Figure, bool) {
	for _, f := range res.Figures {
		if f.Name == name {
			return f.Figure, true
		}
	}
	return plot.Figure{}, false
}

var binder = new(echo.DefaultBinder)

// bindInput overwrites the defaults in dst with the query params present and
// validates the outcome against the slider domains.
func bindInput(ctx echo.Context, dst input) error {
	if err := binder.BindQueryParams(ctx, dst); err != nil {
		return errors.Wrap(err, "binding query params")
	}
	return dst.Validate(core.Validate)
}

func solveCables(ctx echo.Context) (*result, error) {
	in := cable.DefaultInput()
	res := &result{Page: "cables", Input: &in}
	if err := bindInput(ctx, &in); err != nil {
		return res, err
	}
	sol, err := cable.Solve(in)
	if err != nil {
		return res, err
	}
	res.Solution = sol
	res.Quantities = sol.Quantities()
	res.Figures = []namedFigure{{"cable", cable.Figure(sol)}}
	return res, nil
}

func solveDeflections(ctx echo.Context) (*result, error) {
	in := inertia.DefaultInput()
	res := &result{Page: "deflections", Input: &in}
	if err := bindInput(ctx, &in); err != nil {
		return res, err
	}
	sol := inertia.Solve(in)
	res.Solution = sol
	res.Quantities = sol.Quantities()
	res.Figures = []namedFigure{
		{"channel", inertia.ChannelFigure(in.Angle)},
		{"mohr", inertia.MohrFigure(sol.Section, sol.Rotated)},
		{"deflection", inertia.DeflectionFigure(sol)},
	}
	return res, nil
}

func solveFriction(ctx echo.Context) (*result, error) {
	in := friction.DefaultInput()
	res := &result{Page: "friction", Input: &in}
	if err := bindInput(ctx, &in); err != nil {
		return res, err
	}
	sol := friction.Solve(in)
	res.Solution = sol
	res.Quantities = sol.Quantities()
	res.Answer = friction.Describe(sol.Case)
	res.Figures = []namedFigure{{"blocks", friction.Figure(sol)}}
	return res, nil
}

func solveCentroids(ctx echo.Context) (*result, error) {
	in := centroid.DefaultInput()
	res := &result{Page: "centroids", Input: &in}
	if err := bindInput(ctx, &in); err != nil {
		return res, err
	}
	sol, err := centroid.Solve(in)
	if err != nil {
		return res, err
	}
	res.Solution = sol
	res.Quantities = sol.Quantities()
	res.Figures = []namedFigure{
		{"line", centroid.ArcFigure(sol)},
		{"area", centroid.SectorFigure(sol)},
	}
	return res, nil
}

func solveResonance(ctx echo.Context) (*result, error) {
	in := resonance.DefaultInput()
	res := &result{Page: "resonance", Input: &in}
	if err := bindInput(ctx, &in); err != nil {
		return res, err
	}
	sol := resonance.Solve(in)
	res.Solution = sol
	res.Quantities = sol.Quantities()
	res.Figures = []namedFigure{
		{"signals", resonance.SignalsFigure(in)},
		{"superposition", resonance.SuperpositionFigure(in)},
	}
	return res, nil
}

func solveVibrations(ctx echo.Context) (*result, error) {
	in := vibration.DefaultInput()
	res := &result{Page: "vibrations", Input: &in}
	if err := bindInput(ctx, &in); err != nil {
		return res, err
	}
	sol := vibration.Solve(in)
	res.Solution = sol
	res.Quantities = sol.Quantities()
	res.Answer = []string{fmt.Sprintf("The system is %s.", sol.Regime)}
	res.Figures = []namedFigure{{"response", vibration.Figure(sol)}}
	return res, nil
}

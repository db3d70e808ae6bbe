package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/cable"
	"github.com/trezcool/swk211/core/centroid"
	"github.com/trezcool/swk211/core/friction"
	"github.com/trezcool/swk211/core/inertia"
	"github.com/trezcool/swk211/core/resonance"
	"github.com/trezcool/swk211/core/vibration"
)

func newCableCmd(cli *commandLine) *cobra.Command {
	var in cable.Input
	cmd := &cobra.Command{
		Use:   "cable",
		Short: "Shape, sag and tensions of a cable hanging between two supports",
		RunE: func(*cobra.Command, []string) error {
			if err := in.Validate(core.Validate); err != nil {
				return userError(err)
			}
			sol, err := cable.Solve(in)
			if err != nil {
				return userError(err)
			}
			return cli.print(report{Solution: sol, Quantities: sol.Quantities()})
		},
	}
	sliderFlag(cmd, "cables", "self_weight", &in.SelfWeight)
	sliderFlag(cmd, "cables", "length", &in.Length)
	sliderFlag(cmd, "cables", "height_b", &in.HeightB)
	return cmd
}

func newInertiaCmd(cli *commandLine) *cobra.Command {
	var in inertia.Input
	cmd := &cobra.Command{
		Use:   "inertia",
		Short: "Rotated second moments of the channel and its beam deflection",
		RunE: func(*cobra.Command, []string) error {
			if err := in.Validate(core.Validate); err != nil {
				return userError(err)
			}
			sol := inertia.Solve(in)
			return cli.print(report{Solution: sol, Quantities: sol.Quantities()})
		},
	}
	sliderFlag(cmd, "deflections", "modulus", &in.Modulus)
	sliderFlag(cmd, "deflections", "angle", &in.Angle)
	return cmd
}

func newFrictionCmd(cli *commandLine) *cobra.Command {
	var in friction.Input
	cmd := &cobra.Command{
		Use:   "friction",
		Short: "Whether two blocks on an incline slide, and which way",
		RunE: func(*cobra.Command, []string) error {
			if err := in.Validate(core.Validate); err != nil {
				return userError(err)
			}
			sol := friction.Solve(in)
			return cli.print(report{Solution: sol, Quantities: sol.Quantities(), Answer: friction.Describe(sol.Case)})
		},
	}
	sliderFlag(cmd, "friction", "top_mass", &in.TopMass)
	sliderFlag(cmd, "friction", "bottom_mass", &in.BottomMass)
	sliderFlag(cmd, "friction", "friction", &in.Friction)
	sliderFlag(cmd, "friction", "angle", &in.Angle)
	return cmd
}

func newCentroidCmd(cli *commandLine) *cobra.Command {
	var in centroid.Input
	cmd := &cobra.Command{
		Use:   "centroid",
		Short: "Centroids of a unit circular arc and sector",
		RunE: func(*cobra.Command, []string) error {
			if err := in.Validate(core.Validate); err != nil {
				return userError(err)
			}
			sol, err := centroid.Solve(in)
			if err != nil {
				return userError(err)
			}
			return cli.print(report{Solution: sol, Quantities: sol.Quantities()})
		},
	}
	sliderFlag(cmd, "centroids", "start_angle", &in.Start)
	sliderFlag(cmd, "centroids", "end_angle", &in.End)
	return cmd
}

func newResonanceCmd(cli *commandLine) *cobra.Command {
	var in resonance.Input
	cmd := &cobra.Command{
		Use:   "resonance",
		Short: "Beat of two superposed sine waves",
		RunE: func(*cobra.Command, []string) error {
			if err := in.Validate(core.Validate); err != nil {
				return userError(err)
			}
			sol := resonance.Solve(in)
			return cli.print(report{Solution: sol, Quantities: sol.Quantities()})
		},
	}
	sliderFlag(cmd, "resonance", "freq1", &in.Freq1)
	sliderFlag(cmd, "resonance", "freq2", &in.Freq2)
	return cmd
}

func newVibrationCmd(cli *commandLine) *cobra.Command {
	var in vibration.Input
	cmd := &cobra.Command{
		Use:   "vibration",
		Short: "Free vibration of a damped mass-spring system",
		RunE: func(*cobra.Command, []string) error {
			if err := in.Validate(core.Validate); err != nil {
				return userError(err)
			}
			sol := vibration.Solve(in)
			return cli.print(report{
				Solution:   sol,
				Quantities: sol.Quantities(),
				Answer:     []string{fmt.Sprintf("The system is %s.", sol.Regime)},
			})
		},
	}
	sliderFlag(cmd, "vibrations", "mass", &in.Mass)
	sliderFlag(cmd, "vibrations", "stiffness", &in.Stiffness)
	sliderFlag(cmd, "vibrations", "damping", &in.Damping)
	sliderFlag(cmd, "vibrations", "displacement", &in.Displacement)
	return cmd
}

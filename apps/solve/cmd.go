package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trezcool/swk211/apps"
	"github.com/trezcool/swk211/core"
)

var isTerminal = defaultIsTerminal // mockable

func defaultIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type commandLine struct {
	out     io.Writer
	jsonOut bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	cli := &commandLine{out: out}
	root := &cobra.Command{
		Use:   "solve",
		Short: "Solve the SWK211 statics problems",
		Long: `Runs the same calculations as the dashboard pages. Flags take slider
positions with the same domains and defaults as the web sliders.

Results print as a table on a terminal and as JSON otherwise.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVar(&cli.jsonOut, "json", false, "print JSON even on a terminal")
	root.AddCommand(
		newCableCmd(cli),
		newInertiaCmd(cli),
		newFrictionCmd(cli),
		newCentroidCmd(cli),
		newResonanceCmd(cli),
		newVibrationCmd(cli),
	)
	return root
}

// sliderFlag binds a float flag to the slider page.id, e.g. --self-weight.
func sliderFlag(cmd *cobra.Command, page, id string, p *float64) {
	s, ok := core.MustPage(page).Slider(id)
	if !ok {
		panic(fmt.Sprintf("solve: no slider %s.%s", page, id))
	}
	usage := s.Label
	if s.Unit != "" {
		usage += " [" + s.Unit + "]"
	}
	usage += fmt.Sprintf(", %s to %s in steps of %s",
		core.FormatNumber(s.Min), core.FormatNumber(s.Max), core.FormatNumber(s.Step))
	if s.Scale != 0 {
		usage += fmt.Sprintf(" (value × %s)", core.FormatNumber(s.Scale))
	}
	cmd.Flags().Float64Var(p, strings.ReplaceAll(id, "_", "-"), s.Default, usage)
}

// userError turns validation failures into a single *apps.ArgumentError.
func userError(err error) error {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		var msgs []string
		for _, fErr := range core.TranslateErrors(origErr) {
			msgs = append(msgs, fErr.Error)
		}
		return apps.NewArgumentError(strings.Join(msgs, "; "))
	case *core.ValidationError:
		return apps.NewArgumentError(strings.Join(origErr.Messages(), "; "))
	}
	return err
}

type report struct {
	Solution   interface{}     `json:"solution"`
	Quantities []core.Quantity `json:"quantities"`
	Answer     []string        `json:"answer,omitempty"`
}

func (cli *commandLine) print(r report) error {
	if cli.jsonOut || !isTerminal(cli.out) {
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "encoding result")
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	for _, q := range r.Quantities {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", q.Name, q.Symbol, q.Formatted())
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "writing table")
	}
	for _, line := range r.Answer {
		fmt.Fprintln(cli.out, line)
	}
	return nil
}

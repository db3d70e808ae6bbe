package core

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed pages.yaml
var pagesYAML []byte

// Pages lists every dashboard page in navigation order.
var Pages = mustLoadPages(pagesYAML)

type (
	// Slider is a discrete numeric input: min, min+step, ..., max.
	Slider struct {
		ID      string  `yaml:"id" json:"id"`
		Label   string  `yaml:"label" json:"label"`
		Unit    string  `yaml:"unit" json:"unit,omitempty"`
		Min     float64 `yaml:"min" json:"min"`
		Max     float64 `yaml:"max" json:"max"`
		Step    float64 `yaml:"step" json:"step"`
		Default float64 `yaml:"default" json:"default"`
		Scale   float64 `yaml:"scale" json:"scale,omitempty"` // physical value = slider value * scale
	}

	Page struct {
		Name     string   `yaml:"name" json:"name"`
		Path     string   `yaml:"path" json:"path"`
		Title    string   `yaml:"title" json:"title"`
		Heading  string   `yaml:"heading" json:"heading,omitempty"`
		Question string   `yaml:"question" json:"question,omitempty"`
		Intro    []string `yaml:"intro" json:"intro,omitempty"`
		Sliders  []Slider `yaml:"sliders" json:"sliders,omitempty"`
	}
)

const gridTol = 1e-9

// Contains reports whether v is on the slider grid.
func (s Slider) Contains(v float64) bool {
	if math.IsNaN(v) || v < s.Min-gridTol || v > s.Max+gridTol {
		return false
	}
	if s.Step <= 0 {
		return true
	}
	n := (v - s.Min) / s.Step
	return math.Abs(n-math.Round(n)) < gridTol
}

// Marks returns every grid value from Min to Max.
func (s Slider) Marks() []float64 {
	if s.Step <= 0 {
		return []float64{s.Min, s.Max}
	}
	n := int(math.Round((s.Max-s.Min)/s.Step)) + 1
	marks := make([]float64, n)
	for i := range marks {
		marks[i] = s.Min + float64(i)*s.Step
	}
	return marks
}

// Scaled converts a slider value into the physical value it stands for.
func (s Slider) Scaled(v float64) float64 {
	if s.Scale == 0 {
		return v
	}
	return math.Round(v*s.Scale*1e9) / 1e9
}

// MarkLabel is the text shown under a slider mark.
func (s Slider) MarkLabel(v float64) string {
	return FormatNumber(s.Scaled(v))
}

// Slider returns the slider with the given id.
func (p Page) Slider(id string) (Slider, bool) {
	for _, s := range p.Sliders {
		if s.ID == id {
			return s, true
		}
	}
	return Slider{}, false
}

// Default returns the default value of the slider with the given id (0 if unknown).
func (p Page) Default(id string) float64 {
	s, _ := p.Slider(id)
	return s.Default
}

// LookupPage finds a page by name.
func LookupPage(name string) (Page, bool) {
	for _, p := range Pages {
		if p.Name == name {
			return p, true
		}
	}
	return Page{}, false
}

// MustPage is LookupPage for names known at compile time.
func MustPage(name string) Page {
	p, ok := LookupPage(name)
	if !ok {
		panic(fmt.Sprintf("core: unknown page %q", name))
	}
	return p
}

// LookupSlider resolves a "<page>.<slider>" reference.
func LookupSlider(ref string) (Slider, bool) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 {
		return Slider{}, false
	}
	p, ok := LookupPage(parts[0])
	if !ok {
		return Slider{}, false
	}
	return p.Slider(parts[1])
}

// FormatNumber prints v without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func loadPages(data []byte) ([]Page, error) {
	var doc struct {
		Pages []Page `yaml:"pages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding pages")
	}
	seen := make(map[string]bool, len(doc.Pages))
	for _, p := range doc.Pages {
		if p.Name == "" || seen[p.Name] {
			return nil, errors.Errorf("page %q: missing or duplicate name", p.Name)
		}
		seen[p.Name] = true
		for _, s := range p.Sliders {
			if s.Min > s.Max || s.Step <= 0 || !s.Contains(s.Default) {
				return nil, errors.Errorf("page %q: slider %q has an invalid domain", p.Name, s.ID)
			}
		}
	}
	return doc.Pages, nil
}

func mustLoadPages(data []byte) []Page {
	pages, err := loadPages(data)
	if err != nil {
		panic(err)
	}
	return pages
}

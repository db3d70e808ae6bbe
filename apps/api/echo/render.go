package echoapi

import (
	"embed"
	"html/template"
	"io"
	"math"
	"net/url"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/swk211/core"
)

var (
	//go:embed templates
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

type templateRenderer struct {
	tmpl *template.Template
}

var _ echo.Renderer = (*templateRenderer)(nil)

func newTemplateRenderer() (*templateRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return &templateRenderer{tmpl: tmpl}, nil
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

type (
	markView struct {
		Value string
		Label string
	}

	sliderView struct {
		core.Slider
		Value   string
		Display string
		Marks   []markView
	}

	figureLink struct {
		Name string
		URL  string
	}

	pageView struct {
		AppName      string
		Build        string
		Pages        []core.Page
		Page         core.Page
		Sliders      []sliderView
		Result       *result
		Messages     []string
		Figures      []figureLink
		FigureWidth  int
		FigureHeight int
	}
)

// sliderValues reads the current value of every float field of the page
// input by json name; json names and slider ids are the same.
func sliderValues(in interface{}) map[string]float64 {
	vals := map[string]float64{}
	v := reflect.Indirect(reflect.ValueOf(in))
	if v.Kind() != reflect.Struct {
		return vals
	}
	for i := 0; i < v.NumField(); i++ {
		fld := v.Type().Field(i)
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		switch f := v.Field(i); f.Kind() {
		case reflect.Float32, reflect.Float64:
			vals[name] = f.Float()
		}
	}
	return vals
}

func newPageView(p core.Page, res *result, msgs []string) (*pageView, error) {
	view := &pageView{
		AppName:      core.Conf.GetString("appName"),
		Build:        core.Conf.GetString("build"),
		Pages:        core.Pages,
		Page:         p,
		Result:       res,
		Messages:     msgs,
		FigureWidth:  core.Conf.GetInt("figureWidth"),
		FigureHeight: core.Conf.GetInt("figureHeight"),
	}
	if res == nil {
		return view, nil
	}

	vals := sliderValues(res.Input)
	query := url.Values{}
	for _, s := range p.Sliders {
		v, ok := vals[s.ID]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			v = s.Default
		}
		sv := sliderView{Slider: s, Value: core.FormatNumber(v), Display: s.MarkLabel(v)}
		for _, m := range s.Marks() {
			sv.Marks = append(sv.Marks, markView{Value: core.FormatNumber(m), Label: s.MarkLabel(m)})
		}
		view.Sliders = append(view.Sliders, sv)
		query.Set(s.ID, sv.Value)
	}
	for _, f := range res.Figures {
		u := url.URL{Path: "/figures/" + p.Name + "/" + f.Name + ".svg", RawQuery: query.Encode()}
		view.Figures = append(view.Figures, figureLink{Name: f.Name, URL: u.String()})
	}
	return view, nil
}

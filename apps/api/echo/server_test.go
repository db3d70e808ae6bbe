package echoapi

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/plot"
	chartsvc "github.com/trezcool/swk211/services/chart"
	logsvc "github.com/trezcool/swk211/services/logger"
)

func TestMain(m *testing.M) {
	// rollbar-go starts the default client's transport on import
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/rollbar/rollbar-go.NewAsyncTransport.func1"))
}

type httpErr struct {
	Error string `json:"error"`
}

func newTestServer(t *testing.T, opts ...func(*Options)) Server {
	t.Helper()
	o := &Options{
		DisableReqLogs: true,
		Logger:         logsvc.WrapZap(zap.NewNop()),
		Figures:        chartsvc.NewRenderer(640, 480),
	}
	for _, opt := range opts {
		opt(o)
	}
	app, err := NewServer(o)
	require.NoError(t, err)
	return app
}

func get(app http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	rec := get(newTestServer(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome to the SWK211 web app!")
	assert.Contains(t, body, `href="/vibrations"`)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestPages(t *testing.T) {
	app := newTestServer(t)
	for _, p := range core.Pages {
		if p.Name == "home" {
			continue
		}
		t.Run(p.Name, func(t *testing.T) {
			rec := get(app, p.Path)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := rec.Body.String()
			assert.Contains(t, body, "<h1>"+p.Title+"</h1>")
			assert.Contains(t, body, "/figures/"+p.Name+"/")
			for _, s := range p.Sliders {
				assert.Contains(t, body, `name="`+s.ID+`"`)
			}
		})
	}
}

func TestPage_keepsSliderValues(t *testing.T) {
	rec := get(newTestServer(t), "/cables?length=28&height_b=12")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="28"`)
	assert.Contains(t, body, "cable.svg?height_b=12&amp;length=28&amp;self_weight=5")
}

func TestPage_validationMessage(t *testing.T) {
	app := newTestServer(t)

	rec := get(app, "/centroids?start_angle=90&end_angle=90")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Starting angle must be smaller than ending angle!")
	assert.NotContains(t, rec.Body.String(), "<img")

	rec = get(app, "/friction?angle=7")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "angle must be between 0 and 90 in steps of 5")

	nonFinite := []struct {
		url     string
		wantMsg string
	}{
		{url: "/cables?length=NaN", wantMsg: "length must be between 23 and 30 in steps of 1"},
		{url: "/centroids?end_angle=Inf", wantMsg: "end_angle must be between 45 and 360 in steps of 45"},
		{url: "/vibrations?damping=-Inf", wantMsg: "damping must be between 0 and 20 in steps of 1"},
	}
	for _, tt := range nonFinite {
		rec = get(app, tt.url)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tt.url)
		assert.Contains(t, rec.Body.String(), tt.wantMsg, tt.url)
		assert.NotContains(t, rec.Body.String(), "NaN", tt.url)
	}
}

func Test_sliderValues(t *testing.T) {
	in := struct {
		Length  float64 `json:"length"`
		Skipped float64 `json:"-"`
		Label   string  `json:"label"`
	}{Length: math.Inf(1), Skipped: 3, Label: "x"}

	vals := sliderValues(&in)
	require.Len(t, vals, 1)
	assert.True(t, math.IsInf(vals["length"], 1))
	assert.Empty(t, sliderValues(42))
}

func TestAPI(t *testing.T) {
	rec := get(newTestServer(t), "/api/cables")
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Page     string `json:"page"`
		Solution struct {
			Sag          float64 `json:"sag"`
			TurningPoint float64 `json:"x_turn"`
			T0           float64 `json:"t0"`
		} `json:"solution"`
		Figures []struct {
			Name   string      `json:"name"`
			Figure plot.Figure `json:"figure"`
		} `json:"figures"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "cables", res.Page)
	assert.InDelta(t, 4.03396, res.Solution.Sag, 1e-4)
	assert.Greater(t, res.Solution.TurningPoint, 0.0)
	assert.Less(t, res.Solution.TurningPoint, 20.0)
	assert.Greater(t, res.Solution.T0, 0.0)
	require.Len(t, res.Figures, 1)
	assert.Equal(t, "cable", res.Figures[0].Name)
}

func TestAPI_errors(t *testing.T) {
	app := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody map[string]string
	}{
		{
			name:     "off the slider",
			path:     "/api/cables?length=31",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]string{"length": "length must be between 23 and 30 in steps of 1"},
		},
		{
			name:     "degenerate sector",
			path:     "/api/centroids?start_angle=180&end_angle=45",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]string{"end_angle": "Starting angle must be smaller than ending angle!"},
		},
		{
			name:     "unknown page",
			path:     "/api/statics",
			wantCode: http.StatusNotFound,
			wantBody: map[string]string{"error": "not found"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(app, tt.path)
			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}

	rec := get(app, "/api/friction?angle=steep")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFigure(t *testing.T) {
	app := newTestServer(t)
	for name, calc := range calculators {
		res, err := calc(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))
		require.NoError(t, err, name)
		for _, f := range res.Figures {
			rec := get(app, "/figures/"+name+"/"+f.Name+".svg")
			require.Equal(t, http.StatusOK, rec.Code, "%s/%s: %s", name, f.Name, rec.Body.String())
			assert.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
			assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "<svg"), "%s/%s", name, f.Name)
		}
	}

	assert.Equal(t, http.StatusNotFound, get(app, "/figures/friction/nope.svg").Code)
	assert.Equal(t, http.StatusNotFound, get(app, "/figures/friction/blocks.png").Code)
	assert.Equal(t, http.StatusNotFound, get(app, "/figures/statics/blocks.svg").Code)
	assert.Equal(t, http.StatusBadRequest, get(app, "/figures/centroids/line.svg?start_angle=180&end_angle=45").Code)
}

type failingRenderer struct{}

func (failingRenderer) SVG(plot.Figure) ([]byte, error) { return nil, errors.New("out of ink") }

func TestFigure_serverError(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	app := newTestServer(t, func(o *Options) {
		o.Figures = failingRenderer{}
		o.Logger = logsvc.WrapZap(zap.New(zc))
	})

	rec := get(app, "/figures/cables/cable.svg")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body httpErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "out of ink")
	assert.Equal(t, 1, logs.FilterMessage(http.StatusText(http.StatusInternalServerError)).Len())
}

func TestStatic(t *testing.T) {
	rec := get(newTestServer(t), "/static/style.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".slider")
}

func TestTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	app := newTestServer(t, func(o *Options) { o.TracerProvider = tp })

	get(app, "/api/resonance?freq1=4")
	get(app, "/api/cables?length=99")

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "GET /api/:page", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", http.StatusOK))
	assert.Contains(t, spans[1].Attributes(), attribute.Int("http.response.status_code", http.StatusBadRequest))
	assert.NotEmpty(t, spans[1].Events(), "error recorded")
}

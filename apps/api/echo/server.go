package echoapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/trezcool/swk211/core"
	"github.com/trezcool/swk211/core/plot"
)

type (
	// FigureRenderer draws a figure as an SVG document.
	FigureRenderer interface {
		SVG(fig plot.Figure) ([]byte, error)
	}

	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger
		Figures        FigureRenderer
		TracerProvider trace.TracerProvider // global provider when nil
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) (Server, error) {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *server) setup() error {
	debug := core.Conf.GetBool("debug")

	renderer, err := newTemplateRenderer()
	if err != nil {
		return err
	}
	tp := s.opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(tracingMiddleware(tp))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Renderer = renderer
	s.app.Debug = debug

	s.app.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
	s.app.GET("/", s.home)
	for _, p := range core.Pages {
		if calc, ok := calculators[p.Name]; ok {
			s.app.GET(p.Path, s.page(p, calc))
		}
	}
	s.app.GET("/api/:page", s.api)
	s.app.GET("/figures/:page/:file", s.figure)
	return nil
}

func (s *server) Start() error {
	if err := s.app.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "starting server")
	}
	return nil
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

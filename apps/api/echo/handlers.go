package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/swk211/core"
)

func (s *server) home(ctx echo.Context) error {
	view, err := newPageView(core.MustPage("home"), nil, nil)
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "home.html", view)
}

// page renders the dashboard page p. Values the student can fix are shown on
// the page in place of the figures.
func (s *server) page(p core.Page, calc calculator) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		code := http.StatusOK
		res, err := calc(ctx)
		var msgs []string
		if err != nil {
			var ok bool
			if msgs, ok = userMessages(err); !ok {
				return err
			}
			code = http.StatusBadRequest
		}
		view, err := newPageView(p, res, msgs)
		if err != nil {
			return err
		}
		return ctx.Render(code, "page.html", view)
	}
}

func lookupCalculator(ctx echo.Context) (calculator, error) {
	calc, ok := calculators[ctx.Param("page")]
	if !ok {
		return nil, errHttpNotFound
	}
	return calc, nil
}

// api returns the solution and the figure models as JSON.
func (s *server) api(ctx echo.Context) error {
	calc, err := lookupCalculator(ctx)
	if err != nil {
		return err
	}
	res, err := calc(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

// figure renders one figure of a page as SVG.
func (s *server) figure(ctx echo.Context) error {
	calc, err := lookupCalculator(ctx)
	if err != nil {
		return err
	}
	file := ctx.Param("file")
	if !strings.HasSuffix(file, ".svg") {
		return errHttpFigureNotFound
	}
	res, err := calc(ctx)
	if err != nil {
		return err
	}
	fig, ok := res.figure(strings.TrimSuffix(file, ".svg"))
	if !ok {
		return errHttpFigureNotFound
	}

	svg, err := s.opts.Figures.SVG(fig)
	if err != nil {
		return errors.Wrapf(err, "rendering %s/%s", res.Page, file)
	}
	ctx.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")
	return ctx.Blob(http.StatusOK, "image/svg+xml", svg)
}

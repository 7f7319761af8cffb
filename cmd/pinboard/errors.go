package main

import (
	"net/http"
	"strconv"

	goerrors "github.com/go-errors/errors"
	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// parseID parses a record id from the URL or a form. Anything that is not a
// positive integer cannot name a record, so it is reported as not found.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, errors.Wrapf(types.ErrNotFound, "id %q", raw)
	}
	return uint(id), nil
}

func classifyError(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, types.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errors.As(err, &he):
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := classifyError(err)
	if status >= http.StatusInternalServerError {
		logrus.WithField("uri", c.Request().RequestURI).Error(goerrors.Wrap(err, 1).ErrorStack())
	} else {
		logrus.WithField("uri", c.Request().RequestURI).Debugf("request failed: %v", err)
	}

	var renderErr error
	switch {
	case c.Request().Method == http.MethodHead:
		renderErr = c.NoContent(status)
	case wantsJSON(c):
		renderErr = c.JSON(status, statusResponse{Status: "error", Message: msg})
	default:
		renderErr = c.Render(status, "error", types.ErrorPageData{Status: status, Message: msg})
	}
	if renderErr != nil {
		logrus.Error(errors.Wrap(renderErr, "writing error response"))
	}
}

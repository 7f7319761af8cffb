package main

import (
	"context"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oliverisaac/pinboard/service"
	"github.com/oliverisaac/pinboard/types"
	"github.com/oliverisaac/pinboard/web"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Template struct {
	tmpl *template.Template
}

func newTemplate() (*Template, error) {
	tmpl, err := web.ParseTemplates()
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return &Template{tmpl: tmpl}, nil
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.tmpl.ExecuteTemplate(w, name, data)
}

func runServe(ctx context.Context) error {
	cfg, gdb, err := setup()
	if err != nil {
		return err
	}

	e, err := newServer(cfg, newService(cfg, gdb))
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logrus.Error(errors.Wrap(err, "shutting down server"))
		}
	}()

	if err := e.Start(cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "running server")
	}
	return nil
}

func newServer(cfg types.Config, svc *service.Service) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := newTemplate()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = httpErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.Recover())

	e.Use(markJSONRoutes)

	e.Use(middleware.Secure())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError: true,
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logrus.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency,
			})
			if v.Error != nil {
				entry = entry.WithField("err", v.Error)
			}
			entry.Info("request")
			return nil
		},
	}))

	store := sessions.NewCookieStore(cfg.CookieSecret)
	store.Options = sessionOptions(cfg)
	e.Use(session.Middleware(store))

	if cfg.CSRF {
		e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "header:X-CSRF-Token,form:csrf_token",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.SecureCookie,
			CookieSameSite: http.SameSiteLaxMode,
		}))
	}

	e.Use(UserMiddleware(svc))

	e.StaticFS("/static", web.Static)
	e.GET("/healthz", healthHandler(svc))

	// Auth
	e.GET("/login", loginForm(), redirectIfLoggedIn)
	e.POST("/login", login(svc), redirectIfLoggedIn)
	e.GET("/signup", signupForm(cfg), redirectIfLoggedIn)
	e.POST("/signup", signup(cfg, svc), redirectIfLoggedIn)
	e.GET("/logout", logout())
	e.POST("/logout", logout())

	// Pages
	e.GET("/", dashboardHandler(cfg, svc), requireLogin)
	e.GET("/board/:id", dashboardHandler(cfg, svc), requireLogin)

	// Boards
	e.POST("/boards/create", createBoard(svc), requireLogin)
	e.POST("/boards/:id/rename", renameBoard(svc), requireLogin)
	e.POST("/boards/:id/delete", deleteBoard(svc), requireLogin)

	// Notes
	e.POST("/notes/create", createNote(svc), requireLogin)
	e.POST("/notes/:id/update", updateNote(svc), requireLogin)
	e.POST("/notes/:id/delete", deleteNote(svc), requireLogin)
	e.POST("/notes/:id/position", updateNotePosition(svc), requireLogin)
	e.POST("/notes/:id/size", updateNoteSize(svc), requireLogin)
	e.POST("/notes/:id/content", updateNoteContent(svc), requireLogin)

	return e, nil
}

func healthHandler(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := svc.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, statusResponse{Status: "error", Message: err.Error()})
		}
		return c.JSON(http.StatusOK, okResponse)
	}
}

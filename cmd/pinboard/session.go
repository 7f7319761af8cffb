package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oliverisaac/pinboard/service"
	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	UserKey     = "session-user"
	jsonKey     = "json-route"
	sessionName = "session"
	userIDKey   = "user_id"
)

// sessionOptions keeps a login for two weeks.
func sessionOptions(cfg types.Config) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 24 * 14,
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// UserMiddleware resolves the session's user id into a types.User stored on
// the context. A session pointing at a deleted user is treated as anonymous.
func UserMiddleware(svc *service.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipUserLookup(c.Request().URL.Path) {
				return next(c)
			}
			sess, err := session.Get(sessionName, c)
			if err != nil {
				logrus.Debug(errors.Wrap(err, "decoding session cookie"))
				return next(c)
			}
			id, ok := sess.Values[userIDKey].(uint)
			if !ok {
				return next(c)
			}
			user, err := svc.GetUser(c.Request().Context(), id)
			if errors.Is(err, types.ErrNotFound) {
				logrus.Infof("Session refers to missing user %d", id)
				return next(c)
			}
			if err != nil {
				return err
			}
			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// skipUserLookup reports paths that never need the session user.
func skipUserLookup(path string) bool {
	return path == "/healthz" || strings.HasPrefix(path, "/static/")
}

func GetSessionUser(c echo.Context) (types.User, bool) {
	u := c.Get(UserKey)
	if u != nil {
		user := u.(types.User)
		logrus.Debugf("Found session user %s", user.Username)
		return user, true
	}
	return types.User{}, false
}

func requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetSessionUser(c); ok {
			return next(c)
		}
		if wantsJSON(c) {
			return c.JSON(http.StatusUnauthorized, statusResponse{Status: "error", Message: "login required"})
		}
		return c.Redirect(http.StatusFound, "/login")
	}
}

func redirectIfLoggedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetSessionUser(c); ok {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}

// jsonSuffixes are the note endpoints that answer in JSON.
var jsonSuffixes = []string{"/position", "/size", "/content"}

func isJSONPath(path string) bool {
	if !strings.HasPrefix(path, "/notes/") {
		return false
	}
	for _, suffix := range jsonSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// markJSONRoutes flags the JSON endpoints by path. It runs ahead of CSRF and
// login checks so their failures are reported as JSON too.
func markJSONRoutes(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isJSONPath(c.Request().URL.Path) {
			c.Set(jsonKey, true)
		}
		return next(c)
	}
}

func wantsJSON(c echo.Context) bool {
	v, _ := c.Get(jsonKey).(bool)
	return v
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}

func loginSession(c echo.Context, user types.User) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		// An undecodable cookie is replaced by the new session.
		logrus.Debug(errors.Wrap(err, "decoding session cookie"))
	}
	sess.Values[userIDKey] = user.ID
	return errors.Wrap(sess.Save(c.Request(), c.Response()), "saving session")
}

func logoutSession(c echo.Context) error {
	sess, _ := session.Get(sessionName, c)
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	return errors.Wrap(sess.Save(c.Request(), c.Response()), "saving session")
}

func addFlash(c echo.Context, msg string) {
	sess, _ := session.Get(sessionName, c)
	sess.AddFlash(msg)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logrus.Error(errors.Wrap(err, "saving flash message"))
	}
}

// popFlashes returns pending flash messages and removes them from the session.
func popFlashes(c echo.Context) []string {
	sess, _ := session.Get(sessionName, c)
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logrus.Error(errors.Wrap(err, "clearing flash messages"))
	}
	ret := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			ret = append(ret, s)
		}
	}
	return ret
}

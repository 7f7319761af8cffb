package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/pinboard/service"
	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func newFormData(c echo.Context) types.FormData {
	f := types.NewFormData()
	f.CSRFToken = csrfToken(c)
	return f
}

// renderFormError redisplays a form. Validation problems are a 422, anything
// else is logged and reported as a 500 on the same form.
func renderFormError(c echo.Context, name string, form types.FormData, err error) error {
	form = form.WithValidationError(err)
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return c.Render(http.StatusUnprocessableEntity, name, form)
	}
	logrus.Error(errors.Wrapf(err, "handling %s form", name))
	return c.Render(http.StatusInternalServerError, name, form)
}

func signupForm(cfg types.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		form := newFormData(c)
		if !cfg.AllowSignup {
			form.Errors["general"] = "Sign up is currently disabled."
			return c.Render(http.StatusForbidden, "signup", form)
		}
		return c.Render(http.StatusOK, "signup", form)
	}
}

func signup(cfg types.Config, svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.FormValue("username")
		password := c.FormValue("password1")
		confirmation := c.FormValue("password2")

		form := newFormData(c)
		form.Values["username"] = username

		if !cfg.AllowSignup {
			form.Errors["general"] = "Sign up is currently disabled."
			return c.Render(http.StatusForbidden, "signup", form)
		}

		if password != confirmation {
			return renderFormError(c, "signup", form, types.NewValidationError("password2", "The two password fields didn't match."))
		}

		user, err := svc.CreateUser(c.Request().Context(), username, password)
		if err != nil {
			return renderFormError(c, "signup", form, err)
		}
		logrus.Infof("Signed up user %s", user.Username)

		if err := loginSession(c, user); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/")
	}
}

func loginForm() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "login", newFormData(c))
	}
}

func login(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := c.FormValue("username")
		password := c.FormValue("password")

		form := newFormData(c)
		form.Values["username"] = username

		user, err := svc.Authenticate(c.Request().Context(), username, password)
		if err != nil {
			return renderFormError(c, "login", form, err)
		}

		if err := loginSession(c, user); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/")
	}
}

func logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := logoutSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/login")
	}
}

package main

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/pinboard/service"
	"github.com/oliverisaac/pinboard/types"
	"github.com/pkg/errors"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

var okResponse = statusResponse{Status: "ok"}

// formPtr returns nil when key was not submitted at all, so a blank field can
// be told apart from a missing one.
func formPtr(form url.Values, key string) *string {
	if _, ok := form[key]; !ok {
		return nil
	}
	v := form.Get(key)
	return &v
}

func createNote(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		boardID, err := parseID(c.FormValue("board_id"))
		if err != nil {
			return err
		}

		note, err := svc.CreateNote(c.Request().Context(), user.ID, service.NoteInput{
			BoardID: boardID,
			Title:   c.FormValue("title"),
			Color:   c.FormValue("color"),
			Tag:     c.FormValue("tag"),
			Content: c.FormValue("content"),
		})
		if err != nil {
			return err
		}

		addFlash(c, "Note created.")
		return c.Redirect(http.StatusFound, boardURL(note.BoardID))
	}
}

func updateNote(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		id, err := parseID(c.Param("id"))
		if err != nil {
			return err
		}

		form, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable form").SetInternal(err)
		}

		note, err := svc.UpdateNote(c.Request().Context(), user.ID, id, service.NoteUpdate{
			Title:   formPtr(form, "title"),
			Content: formPtr(form, "content"),
			Color:   formPtr(form, "color"),
			Tag:     formPtr(form, "tag"),
		})
		if err != nil {
			return err
		}

		addFlash(c, "Note updated.")
		return c.Redirect(http.StatusFound, boardURL(note.BoardID))
	}
}

func deleteNote(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		id, err := parseID(c.Param("id"))
		if err != nil {
			return err
		}

		if _, err := svc.DeleteNote(c.Request().Context(), user.ID, id); err != nil {
			return err
		}

		addFlash(c, "Note deleted.")
		return c.Redirect(http.StatusFound, "/")
	}
}

func updateNotePosition(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		id, err := parseID(c.Param("id"))
		if err != nil {
			return err
		}

		err = svc.UpdatePosition(c.Request().Context(), user.ID, id, c.FormValue("x"), c.FormValue("y"))
		if errors.Is(err, types.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid coordinates"})
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, okResponse)
	}
}

func updateNoteSize(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		id, err := parseID(c.Param("id"))
		if err != nil {
			return err
		}

		err = svc.UpdateSize(c.Request().Context(), user.ID, id, c.FormValue("width"), c.FormValue("height"))
		if errors.Is(err, types.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid size"})
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, okResponse)
	}
}

func updateNoteContent(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		id, err := parseID(c.Param("id"))
		if err != nil {
			return err
		}

		if err := svc.UpdateContent(c.Request().Context(), user.ID, id, c.FormValue("content")); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, okResponse)
	}
}

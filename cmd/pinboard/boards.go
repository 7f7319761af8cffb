package main

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/pinboard/service"
)

func boardURL(id uint) string {
	return fmt.Sprintf("/board/%d", id)
}

func createBoard(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)

		board, err := svc.CreateBoard(c.Request().Context(), user.ID, c.FormValue("name"))
		if err != nil {
			return err
		}

		addFlash(c, fmt.Sprintf("Board '%s' created.", board.Name))
		return c.Redirect(http.StatusFound, boardURL(board.ID))
	}
}

func renameBoard(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		id, err := parseID(c.Param("id"))
		if err != nil {
			return err
		}

		board, err := svc.RenameBoard(c.Request().Context(), user.ID, id, c.FormValue("name"))
		if err != nil {
			return err
		}

		addFlash(c, fmt.Sprintf("Board renamed to '%s'.", board.Name))
		return c.Redirect(http.StatusFound, boardURL(board.ID))
	}
}

func deleteBoard(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		id, err := parseID(c.Param("id"))
		if err != nil {
			return err
		}

		board, err := svc.DeleteBoard(c.Request().Context(), user.ID, id)
		if err != nil {
			return err
		}

		addFlash(c, fmt.Sprintf("Board '%s' deleted.", board.Name))
		return c.Redirect(http.StatusFound, "/")
	}
}

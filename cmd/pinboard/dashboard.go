package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/pinboard/service"
	"github.com/oliverisaac/pinboard/types"
	"github.com/sirupsen/logrus"
)

// dashboardHandler renders one board and its notes. Without an :id it shows
// the most recently updated board, creating "My Board" for new users.
func dashboardHandler(cfg types.Config, svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := GetSessionUser(c)
		ctx := c.Request().Context()

		var requested *uint
		if raw := c.Param("id"); raw != "" {
			id, err := parseID(raw)
			if err != nil {
				return err
			}
			requested = &id
		}

		board, created, err := svc.GetOrBootstrapDefault(ctx, user.ID, requested)
		if err != nil {
			return err
		}
		if created {
			logrus.Infof("Created default board for user %s", user.Username)
		}

		pageData := types.NewDashboardPageData(cfg).WithUser(user)

		boards, err := svc.ListBoards(ctx, user.ID)
		if err != nil {
			pageData.WithError(err)
		}
		notes, err := svc.ListNotes(ctx, user.ID, board.ID)
		if err != nil {
			pageData.WithError(err)
		}

		pageData = pageData.
			WithBoards(boards, board).
			WithNotes(notes).
			WithFlashes(popFlashes(c)).
			WithCSRFToken(csrfToken(c))

		return c.Render(http.StatusOK, "dashboard", pageData)
	}
}

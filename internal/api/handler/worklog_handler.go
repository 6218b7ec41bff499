package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

const headerIdempotencyKey = "Idempotency-Key"

type WorkLogHandler struct {
	worklogs ports.WorkLogService
}

func NewWorkLogHandler(worklogs ports.WorkLogService) *WorkLogHandler {
	return &WorkLogHandler{worklogs: worklogs}
}

// Submit handles POST /work-list. The body is free-form; email defaults to
// the caller and date accepts RFC 3339 or YYYY-MM-DD.
//
// @Summary      Submit a work log entry
// @Tags         work
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                  false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      map[string]interface{}  true   "Work record"
// @Success      201              {object}  map[string]interface{}
// @Failure      400              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /work-list [post]
func (h *WorkLogHandler) Submit(c echo.Context) error {
	caller, err := ctxEmail(c)
	if err != nil {
		return err
	}

	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	email := caller
	if v, ok := body["email"]; ok {
		s, _ := v.(string)
		if s != "" && s != caller {
			return domain.ErrForbidden
		}
	}

	var date time.Time
	if v, ok := body["date"]; ok && v != nil {
		s, _ := v.(string)
		date, err = parseWorkDate(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "date must be RFC 3339 or YYYY-MM-DD")
		}
	}

	delete(body, "_id")
	delete(body, "email")
	delete(body, "date")

	entry, err := h.worklogs.Submit(c.Request().Context(), ports.SubmitWorkLogInput{
		Email:          email,
		Date:           date,
		Fields:         body,
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

func parseWorkDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

// List handles GET /work-list.
//
// @Summary      List work log entries
// @Tags         work
// @Produce      json
// @Param        email  query     string  false  "Filter by owner email, newest first"
// @Success      200    {array}   map[string]interface{}
// @Router       /work-list [get]
func (h *WorkLogHandler) List(c echo.Context) error {
	entries, err := h.worklogs.List(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

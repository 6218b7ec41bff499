package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/api/middleware"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// ctxEmail returns the verified caller email injected by the Auth middleware.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	if email == "" {
		return "", domain.ErrInvalidToken
	}
	return email, nil
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

type idParam struct {
	ID string `validate:"required,len=24,hexadecimal"`
}

// pathID returns the :id path parameter when it is a well-formed ObjectID.
func pathID(c echo.Context) (string, error) {
	p := idParam{ID: c.Param("id")}
	if err := c.Validate(&p); err != nil {
		return "", domain.ErrInvalidID
	}
	return p.ID, nil
}

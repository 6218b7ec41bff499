package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/pkg/metrics"
)

type AuthHandler struct {
	tokens ports.TokenService
}

func NewAuthHandler(tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs the posted identity payload.
//
// @Summary      Issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Identity payload, must include email"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.tokens.Issue(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

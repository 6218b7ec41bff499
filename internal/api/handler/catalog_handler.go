package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

// CatalogHandler serves the reference listings and visitor messages.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type postMessageRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Services handles GET /services.
//
// @Summary      List services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /services [get]
func (h *CatalogHandler) Services(c echo.Context) error {
	docs, err := h.catalog.Services(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Testimonials handles GET /testimonials.
//
// @Summary      List testimonials
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /testimonials [get]
func (h *CatalogHandler) Testimonials(c echo.Context) error {
	docs, err := h.catalog.Testimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// PostMessage handles POST /messages.
//
// @Summary      Leave a message
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      postMessageRequest  true   "Sender and text"
// @Success      201              {object}  domain.Message
// @Failure      400              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /messages [post]
func (h *CatalogHandler) PostMessage(c echo.Context) error {
	var req postMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.catalog.PostMessage(c.Request().Context(), ports.PostMessageInput{
		Email:          req.Email,
		Message:        req.Message,
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Messages handles GET /messages.
//
// @Summary      List messages
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Message
// @Router       /messages [get]
func (h *CatalogHandler) Messages(c echo.Context) error {
	msgs, err := h.catalog.Messages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

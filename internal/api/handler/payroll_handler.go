package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

type PayrollHandler struct {
	payroll ports.PayrollService
}

func NewPayrollHandler(payroll ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

type paymentData struct {
	Email      string     `json:"email" validate:"required,email"`
	Name       string     `json:"name"`
	EmployeeID string     `json:"employeeId"`
	Salary     float64    `json:"salary" validate:"gte=0"`
	Month      string     `json:"month" validate:"required"`
	Year       yearNumber `json:"year" validate:"required"`
}

type recordPaymentRequest struct {
	Data *paymentData `json:"data" validate:"required"`
}

// yearNumber accepts both 2024 and "2024".
type yearNumber int

func (y *yearNumber) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*y = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("year: %w", err)
	}
	*y = yearNumber(n)
	return nil
}

// Record handles POST /payment-history/:id.
//
// @Summary      Record a monthly salary payment
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Employee id"
// @Param        body  body      recordPaymentRequest  true  "Payment wrapped in data"
// @Success      201   {object}  domain.PaymentRecord
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payment-history/{id} [post]
func (h *PayrollHandler) Record(c echo.Context) error {
	actor, err := ctxEmail(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	employeeID := req.Data.EmployeeID
	if employeeID == "" {
		employeeID = id
	}

	payment, err := h.payroll.RecordPayment(c.Request().Context(), ports.RecordPaymentInput{
		Email:      req.Data.Email,
		Name:       req.Data.Name,
		EmployeeID: employeeID,
		Salary:     req.Data.Salary,
		Month:      req.Data.Month,
		Year:       int(req.Data.Year),
		PaidBy:     actor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, payment)
}

// History handles GET /payment-history.
//
// @Summary      List salary payments
// @Tags         payroll
// @Produce      json
// @Param        email  query     string  false  "Filter by recipient email"
// @Success      200    {array}   domain.PaymentRecord
// @Router       /payment-history [get]
func (h *PayrollHandler) History(c echo.Context) error {
	payments, err := h.payroll.History(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

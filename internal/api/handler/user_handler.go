package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

// UserHandler serves signup, lookups, role self-checks and the
// administrative user mutations.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email" validate:"required,email"`
	Role          string  `json:"role" validate:"omitempty,oneof=employee HR" enums:"employee,HR"`
	Image         string  `json:"image"`
	BankAccountNo string  `json:"bank_account_no"`
	Salary        float64 `json:"salary" validate:"gte=0"`
	Designation   string  `json:"designation"`
}

type salaryRequest struct {
	Data *float64 `json:"data" validate:"required,gte=0"`
}

// Create registers a user on first signup.
//
// @Summary      Sign up a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User profile"
// @Success      201   {object}  domain.User
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, created, err := h.users.Register(c.Request().Context(), ports.RegisterUserInput{
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		Image:         req.Image,
		BankAccountNo: req.BankAccountNo,
		Salary:        req.Salary,
		Designation:   req.Designation,
	})
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(http.StatusOK, messageResponse{Message: domain.ErrUserExists.Error()})
	}
	return c.JSON(http.StatusCreated, user)
}

// List returns one user when ?email is given, otherwise every user.
//
// @Summary      Get or list users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Filter by email"
// @Success      200    {array}   domain.User
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if email := c.QueryParam("email"); email != "" {
		user, err := h.users.Get(ctx, email)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, user)
	}

	users, err := h.users.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// IsHR handles GET /users/hr/:email.
//
// @Summary      Check whether the caller holds the HR role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller email"
// @Success      200    {object}  map[string]bool
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/hr/{email} [get]
func (h *UserHandler) IsHR(c echo.Context) error {
	return h.roleCheck(c, domain.RoleHR, "HR")
}

// IsAdmin handles GET /users/admin/:email.
//
// @Summary      Check whether the caller holds the admin role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller email"
// @Success      200    {object}  map[string]bool
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c echo.Context) error {
	return h.roleCheck(c, domain.RoleAdmin, "admin")
}

// IsEmployee handles GET /users/employee/:email.
//
// @Summary      Check whether the caller holds the employee role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller email"
// @Success      200    {object}  map[string]bool
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/employee/{email} [get]
func (h *UserHandler) IsEmployee(c echo.Context) error {
	return h.roleCheck(c, domain.RoleEmployee, "employee")
}

// roleCheck answers {key: bool} for the caller's own email only.
func (h *UserHandler) roleCheck(c echo.Context, role, key string) error {
	caller, err := ctxEmail(c)
	if err != nil {
		return err
	}
	if c.Param("email") != caller {
		return domain.ErrForbidden
	}

	ok, err := h.users.HasRole(c.Request().Context(), caller, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{key: ok})
}

// Verify handles PUT /users/:id.
//
// @Summary      Mark a user as verified
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Verify(c echo.Context) error {
	return h.mutate(c, h.users.Verify)
}

// Fire handles PATCH /users/:id.
//
// @Summary      Fire a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Fire(c echo.Context) error {
	return h.mutate(c, h.users.Fire)
}

// GrantHR handles PATCH /users/:id/HR.
//
// @Summary      Promote a user to HR
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/HR [patch]
func (h *UserHandler) GrantHR(c echo.Context) error {
	return h.mutate(c, h.users.GrantHR)
}

func (h *UserHandler) mutate(c echo.Context, op func(ctx context.Context, actor, id string) (*domain.User, error)) error {
	actor, err := ctxEmail(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := op(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateSalary handles PATCH /users/:id/salary.
//
// @Summary      Raise a user's salary
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "User id"
// @Param        body  body      salaryRequest  true  "New salary in data"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/{id}/salary [patch]
func (h *UserHandler) UpdateSalary(c echo.Context) error {
	actor, err := ctxEmail(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req salaryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateSalary(c.Request().Context(), actor, id, *req.Data)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// UserHandler serves the admin-only account listing.
type UserHandler struct {
	accounts ports.AccountRepository
}

func NewUserHandler(accounts ports.AccountRepository) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// List handles GET /users. The password hash never serialises: the domain
// type tags it json:"-", so the response carries identity fields only.
//
// @Summary      List accounts (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

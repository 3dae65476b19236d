// Package http contains the echo handlers that expose the application
// services as the JSON API.
package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/infrastructure/logger"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID    = "user"
	ContextKeyUserEmail = "user_email"
)

// getOwnerIDFromContext returns the authenticated owner id. The auth
// middleware guarantees it is present on protected routes.
func getOwnerIDFromContext(c echo.Context) string {
	id, _ := c.Get(ContextKeyUserID).(string)
	return id
}

func getEmailFromContext(c echo.Context) string {
	email, _ := c.Get(ContextKeyUserEmail).(string)
	return email
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	}
	return id, nil
}

// UserHandler handles user-related requests
type UserHandler struct {
	logger *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(logger *logger.Logger) *UserHandler {
	return &UserHandler{logger: logger}
}

// GetCurrentUser echoes back the identity carried by the verified token.
// Accounts live in the external identity provider, so there is nothing more
// to look up here.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	user := entities.User{
		ID:    getOwnerIDFromContext(c),
		Email: getEmailFromContext(c),
	}

	return c.JSON(http.StatusOK, user)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// JournalHandler handles journal-related requests
type JournalHandler struct {
	journalService ports.JournalService
	logger         *logger.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService ports.JournalService, logger *logger.Logger) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		logger:         logger,
	}
}

// ListJournals returns every journal entry of the authenticated owner.
func (h *JournalHandler) ListJournals(c echo.Context) error {
	ownerID := getOwnerIDFromContext(c)

	journals, err := h.journalService.ListJournals(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("List journals failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list journals")
	}

	return c.JSON(http.StatusOK, journals)
}

// CreateJournal handles journal creation
func (h *JournalHandler) CreateJournal(c echo.Context) error {
	var req ports.CreateJournalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ownerID := getOwnerIDFromContext(c)

	journal, err := h.journalService.CreateJournal(c.Request().Context(), ownerID, req)
	if err != nil {
		h.logger.Error("Create journal failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create journal")
	}

	return c.JSON(http.StatusCreated, journal)
}

// UpdateJournal handles partial journal updates
func (h *JournalHandler) UpdateJournal(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ports.UpdateJournalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	journal, err := h.journalService.UpdateJournal(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrJournalNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Journal entry not found")
		}
		h.logger.Error("Update journal failed", "error", err, "journal_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update journal")
	}

	return c.JSON(http.StatusOK, journal)
}

// DeleteJournal handles journal deletion
func (h *JournalHandler) DeleteJournal(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.journalService.DeleteJournal(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete journal failed", "error", err, "journal_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete journal")
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Journal entry deleted successfully"})
}

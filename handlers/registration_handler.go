package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pbk69220/tournoi-football-inscription2/services"
)

type RegistrationHandler struct {
	svc *services.RegistrationService
}

func NewRegistrationHandler(svc *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// GET /api/registrations — public recap listing, contact details stripped.
func (h *RegistrationHandler) List(c echo.Context) error {
	views, err := h.svc.ListPublic()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, views)
}

// GET /api/registrations/admin/full — full records, admin only.
func (h *RegistrationHandler) ListFull(c echo.Context) error {
	views, err := h.svc.ListAdmin()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, views)
}

// POST /api/registrations — public submission.
func (h *RegistrationHandler) Create(c echo.Context) error {
	var in services.RegistrationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}
	rec, err := h.svc.Create(in)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec.View())
}

// PUT /api/registrations/:id — full field replacement, admin only.
func (h *RegistrationHandler) Update(c echo.Context) error {
	var in services.RegistrationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}
	if err := h.svc.Update(c.Param("id"), in); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// DELETE /api/registrations/:id — admin only.
func (h *RegistrationHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// GET /api/stats — aggregate counts for the public recap.
func (h *RegistrationHandler) Stats(c echo.Context) error {
	st, err := h.svc.Stats()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}

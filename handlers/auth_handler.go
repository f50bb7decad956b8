package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pbk69220/tournoi-football-inscription2/middlewares"
)

type AuthHandler struct {
	gate *middlewares.AdminGate
}

func NewAuthHandler(gate *middlewares.AdminGate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

type adminLoginReq struct {
	Password string `json:"password"`
}

// POST /api/admin/login
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password required"})
	}
	if !h.gate.Verify(req.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid password"})
	}
	token, err := h.gate.SignToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "token": token})
}

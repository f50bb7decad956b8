package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbk69220/tournoi-football-inscription2/models"
)

func TestAdminLogin(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/admin/login", `{"password":"`+adminPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.NotEmpty(t, got.Token)

	// the issued token is accepted by the gate as a bearer credential
	req := httptest.NewRequest(http.MethodGet, "/api/registrations/admin/full", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+got.Token)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/admin/login", `{"password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid password"}`, rec.Body.String())
}

func TestAdminLoginMissingPassword(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/admin/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Password required"}`, rec.Body.String())
}

func TestExportCSV(t *testing.T) {
	e, db := newTestServer(t)
	seed(t, db, "abc", models.ServiceFlags{Accommodation1Night: true})

	rec := do(e, http.MethodGet, "/api/registrations/admin/export?password="+adminPassword, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "inscriptions.csv")

	body := rec.Body.String()
	assert.Contains(t, body, "Nom,Email,Téléphone,Joueur,Catégorie")
	assert.Contains(t, body, "Jean Plasse,j@x.fr,0612345678,Martin,U13,Non,Oui")
}

func TestExportRequiresAdmin(t *testing.T) {
	e, db := newTestServer(t)
	seed(t, db, "abc", models.ServiceFlags{})

	rec := do(e, http.MethodGet, "/api/registrations/admin/export", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

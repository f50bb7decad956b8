package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pbk69220/tournoi-football-inscription2/metrics"
	"github.com/pbk69220/tournoi-football-inscription2/models"
	"github.com/pbk69220/tournoi-football-inscription2/services"
)

type ExportHandler struct {
	svc *services.RegistrationService
}

func NewExportHandler(svc *services.RegistrationService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

var csvHeaders = []string{
	"Nom", "Email", "Téléphone", "Joueur", "Catégorie",
	"Héberger 2 nuits", "Héberger 1 nuit",
	"Aider sam. matin", "Aider sam. après-midi",
	"Aider dim. matin", "Aider dim. après-midi",
	"Date inscription",
}

func ouiNon(v bool) string {
	if v {
		return "Oui"
	}
	return "Non"
}

// GET /api/registrations/admin/export — full records as a CSV attachment,
// one row per registration, admin only.
func (h *ExportHandler) Export(c echo.Context) error {
	views, err := h.svc.ListAdmin()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	for _, v := range views {
		if err := w.Write(exportRow(v)); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	metrics.ExportsServed.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="inscriptions.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func exportRow(v models.RegistrationView) []string {
	return []string{
		v.Name,
		v.Email,
		v.Phone,
		v.PlayerFirstName,
		v.Category,
		ouiNon(v.Services.Accommodation2Nights),
		ouiNon(v.Services.Accommodation1Night),
		ouiNon(v.Services.HelpSaturdayMorning),
		ouiNon(v.Services.HelpSaturdayAfternoon),
		ouiNon(v.Services.HelpSundayMorning),
		ouiNon(v.Services.HelpSundayAfternoon),
		time.UnixMilli(v.Timestamp).Format("02/01/2006"),
	}
}

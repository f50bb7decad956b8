package services

import (
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/pbk69220/tournoi-football-inscription2/metrics"
	"github.com/pbk69220/tournoi-football-inscription2/models"
)

// RegistrationInput is the submitted field set, used verbatim for create and
// for full-replacement update. A missing services object means all-false.
type RegistrationInput struct {
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	PlayerFirstName string              `json:"playerFirstName"`
	Category        string              `json:"category"`
	Services        models.ServiceFlags `json:"services"`
}

// RegistrationService owns all reads and writes against the registrations
// table. It keeps no copy of the data between calls; the store is the single
// source of truth.
type RegistrationService struct {
	db *gorm.DB

	// id minting state: ids are creation-time millis rendered as decimal
	// strings, bumped under the mutex so concurrent creates in the same
	// millisecond still get distinct, increasing ids.
	mu     sync.Mutex
	lastID int64
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

func (s *RegistrationService) nextID() (string, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10), now
}

// Create validates presence of the five string fields, assigns id and
// timestamp and inserts the row. A submission with every service flag false
// is accepted; the public form enforces "at least one service" client-side
// only and the server intentionally mirrors that.
func (s *RegistrationService) Create(in RegistrationInput) (models.Registration, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.PlayerFirstName == "" || in.Category == "" {
		return models.Registration{}, ErrMissingFields
	}

	id, ts := s.nextID()
	rec := models.Registration{
		ID:              id,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		PlayerFirstName: in.PlayerFirstName,
		Category:        in.Category,
		Timestamp:       ts,
	}
	rec.SetServices(in.Services)

	if err := s.db.Create(&rec).Error; err != nil {
		return models.Registration{}, storeErr("insert registration", err)
	}
	metrics.RegistrationsCreated.Inc()
	return rec, nil
}

// ListPublic returns every registration newest-first with contact details
// stripped.
func (s *RegistrationService) ListPublic() ([]models.PublicRegistrationView, error) {
	rows, err := s.listRows()
	if err != nil {
		return nil, err
	}
	views := make([]models.PublicRegistrationView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].PublicView())
	}
	return views, nil
}

// ListAdmin returns every registration newest-first with full fields.
func (s *RegistrationService) ListAdmin() ([]models.RegistrationView, error) {
	rows, err := s.listRows()
	if err != nil {
		return nil, err
	}
	views := make([]models.RegistrationView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].View())
	}
	return views, nil
}

func (s *RegistrationService) listRows() ([]models.Registration, error) {
	var rows []models.Registration
	if err := s.db.Order("timestamp DESC").Find(&rows).Error; err != nil {
		return nil, storeErr("list registrations", err)
	}
	return rows, nil
}

// Update replaces every mutable field of the row. id and timestamp are never
// touched. An id that matches no row still reports success; see DESIGN.md.
func (s *RegistrationService) Update(id string, in RegistrationInput) error {
	var rec models.Registration
	rec.SetServices(in.Services)
	updates := map[string]any{
		"name":                  in.Name,
		"email":                 in.Email,
		"phone":                 in.Phone,
		"playerFirstName":       in.PlayerFirstName,
		"category":              in.Category,
		"accommodation2nights":  rec.Accommodation2Nights,
		"accommodation1night":   rec.Accommodation1Night,
		"helpSaturdayMorning":   rec.HelpSaturdayMorning,
		"helpSaturdayAfternoon": rec.HelpSaturdayAfternoon,
		"helpSundayMorning":     rec.HelpSundayMorning,
		"helpSundayAfternoon":   rec.HelpSundayAfternoon,
	}
	if err := s.db.Model(&models.Registration{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return storeErr("update registration", err)
	}
	metrics.RegistrationsUpdated.Inc()
	return nil
}

// Delete removes the row. Same no-op-on-missing-id contract as Update.
func (s *RegistrationService) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.Registration{}).Error; err != nil {
		return storeErr("delete registration", err)
	}
	metrics.RegistrationsDeleted.Inc()
	return nil
}

// Stats scans every row and counts the truthy flags. Computed fresh per
// call, no caching.
func (s *RegistrationService) Stats() (models.Stats, error) {
	var rows []models.Registration
	if err := s.db.Find(&rows).Error; err != nil {
		return models.Stats{}, storeErr("scan registrations", err)
	}

	st := models.Stats{Total: len(rows)}
	for i := range rows {
		f := rows[i].Services()
		if f.Accommodation2Nights {
			st.Accommodation2Nights++
		}
		if f.Accommodation1Night {
			st.Accommodation1Night++
		}
		if f.HelpSaturdayMorning {
			st.HelpSaturdayMorning++
		}
		if f.HelpSaturdayAfternoon {
			st.HelpSaturdayAfternoon++
		}
		if f.HelpSundayMorning {
			st.HelpSundayMorning++
		}
		if f.HelpSundayAfternoon {
			st.HelpSundayAfternoon++
		}
	}
	return st, nil
}

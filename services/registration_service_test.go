package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pbk69220/tournoi-football-inscription2/models"
)

func newTestService(t *testing.T) *RegistrationService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Registration{}))
	return NewRegistrationService(db)
}

func validInput() RegistrationInput {
	return RegistrationInput{
		Name:            "Jean Plasse",
		Email:           "j@x.fr",
		Phone:           "0612345678",
		PlayerFirstName: "Martin",
		Category:        "U13",
		Services:        models.ServiceFlags{Accommodation1Night: true},
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)

	blank := func(mutate func(*RegistrationInput)) RegistrationInput {
		in := validInput()
		mutate(&in)
		return in
	}
	cases := map[string]RegistrationInput{
		"name":            blank(func(in *RegistrationInput) { in.Name = "" }),
		"email":           blank(func(in *RegistrationInput) { in.Email = "" }),
		"phone":           blank(func(in *RegistrationInput) { in.Phone = "" }),
		"playerFirstName": blank(func(in *RegistrationInput) { in.PlayerFirstName = "" }),
		"category":        blank(func(in *RegistrationInput) { in.Category = "" }),
	}
	for field, in := range cases {
		_, err := svc.Create(in)
		assert.ErrorIs(t, err, ErrMissingFields, "missing %s", field)
	}

	views, err := svc.ListAdmin()
	require.NoError(t, err)
	assert.Empty(t, views, "rejected submissions must not insert rows")
}

func TestCreateAssignsUniqueMonotonicIDs(t *testing.T) {
	svc := newTestService(t)

	seen := map[string]bool{}
	var lastTS int64
	for i := 0; i < 20; i++ {
		rec, err := svc.Create(validInput())
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
		assert.GreaterOrEqual(t, rec.Timestamp, lastTS)
		lastTS = rec.Timestamp
		assert.Equal(t, fmt.Sprintf("%d", rec.Timestamp), rec.ID)
	}
}

func TestCreateAcceptsAllFlagsFalse(t *testing.T) {
	svc := newTestService(t)

	in := validInput()
	in.Services = models.ServiceFlags{}
	rec, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceFlags{}, rec.Services())
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := newTestService(t)

	var ids []string
	for i := 0; i < 5; i++ {
		rec, err := svc.Create(validInput())
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	admin, err := svc.ListAdmin()
	require.NoError(t, err)
	require.Len(t, admin, 5)
	for i, v := range admin {
		assert.Equal(t, ids[len(ids)-1-i], v.ID)
	}

	public, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, public, 5)
	assert.Equal(t, admin[0].ID, public[0].ID)
}

func TestUpdateReplacesFieldsAndKeepsTimestamp(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Create(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Marie Curie"
	in.Services = models.ServiceFlags{Accommodation2Nights: true}
	require.NoError(t, svc.Update(rec.ID, in))

	admin, err := svc.ListAdmin()
	require.NoError(t, err)
	require.Len(t, admin, 1)
	assert.Equal(t, "Marie Curie", admin[0].Name)
	assert.True(t, admin[0].Services.Accommodation2Nights)
	assert.False(t, admin[0].Services.Accommodation1Night)
	assert.Equal(t, rec.Timestamp, admin[0].Timestamp)
	assert.Equal(t, rec.ID, admin[0].ID)
}

func TestUpdateMissingIDReportsSuccess(t *testing.T) {
	svc := newTestService(t)
	assert.NoError(t, svc.Update("does-not-exist", validInput()))
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Create(validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(rec.ID))

	views, err := svc.ListAdmin()
	require.NoError(t, err)
	assert.Empty(t, views)

	// missing id is a silent no-op, same as update
	assert.NoError(t, svc.Delete(rec.ID))
}

func TestStatsMatchListing(t *testing.T) {
	svc := newTestService(t)

	inputs := []models.ServiceFlags{
		{Accommodation2Nights: true, HelpSundayMorning: true},
		{Accommodation1Night: true},
		{Accommodation1Night: true, HelpSaturdayAfternoon: true},
		{},
	}
	for _, f := range inputs {
		in := validInput()
		in.Services = f
		_, err := svc.Create(in)
		require.NoError(t, err)
	}

	st, err := svc.Stats()
	require.NoError(t, err)

	admin, err := svc.ListAdmin()
	require.NoError(t, err)
	assert.Equal(t, len(admin), st.Total)
	assert.Equal(t, 1, st.Accommodation2Nights)
	assert.Equal(t, 2, st.Accommodation1Night)
	assert.Equal(t, 0, st.HelpSaturdayMorning)
	assert.Equal(t, 1, st.HelpSaturdayAfternoon)
	assert.Equal(t, 1, st.HelpSundayMorning)
	assert.Equal(t, 0, st.HelpSundayAfternoon)
}

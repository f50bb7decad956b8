package models

// Registration is the persisted row. The six service flags are stored as
// flat 0/1 integer columns; column names match the historical table so an
// existing registrations.db keeps working.
type Registration struct {
	ID                    string `gorm:"column:id;primaryKey"              json:"id"`
	Name                  string `gorm:"column:name;not null"              json:"name"`
	Email                 string `gorm:"column:email;not null"             json:"email"`
	Phone                 string `gorm:"column:phone;not null"             json:"phone"`
	PlayerFirstName       string `gorm:"column:playerFirstName;not null"   json:"playerFirstName"`
	Category              string `gorm:"column:category;not null"          json:"category"`
	Accommodation2Nights  int    `gorm:"column:accommodation2nights;default:0"  json:"-"`
	Accommodation1Night   int    `gorm:"column:accommodation1night;default:0"   json:"-"`
	HelpSaturdayMorning   int    `gorm:"column:helpSaturdayMorning;default:0"   json:"-"`
	HelpSaturdayAfternoon int    `gorm:"column:helpSaturdayAfternoon;default:0" json:"-"`
	HelpSundayMorning     int    `gorm:"column:helpSundayMorning;default:0"     json:"-"`
	HelpSundayAfternoon   int    `gorm:"column:helpSundayAfternoon;default:0"   json:"-"`
	Timestamp             int64  `gorm:"column:timestamp;not null"         json:"timestamp"`
}

func (Registration) TableName() string { return "registrations" }

// ServiceFlags is the nested wire shape of the six flags. The zero value is
// all-false, so a submission without a services object decodes cleanly.
type ServiceFlags struct {
	Accommodation2Nights  bool `json:"accommodation2nights"`
	Accommodation1Night   bool `json:"accommodation1night"`
	HelpSaturdayMorning   bool `json:"helpSaturdayMorning"`
	HelpSaturdayAfternoon bool `json:"helpSaturdayAfternoon"`
	HelpSundayMorning     bool `json:"helpSundayMorning"`
	HelpSundayAfternoon   bool `json:"helpSundayAfternoon"`
}

// RegistrationView is the full wire representation returned to admins and on
// create.
type RegistrationView struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	PlayerFirstName string       `json:"playerFirstName"`
	Category        string       `json:"category"`
	Services        ServiceFlags `json:"services"`
	Timestamp       int64        `json:"timestamp"`
}

// PublicRegistrationView is the contact-stripped representation used on the
// public listing. Email and phone have no fields at all, so the keys can
// never leak.
type PublicRegistrationView struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	PlayerFirstName string       `json:"playerFirstName"`
	Category        string       `json:"category"`
	Services        ServiceFlags `json:"services"`
	Timestamp       int64        `json:"timestamp"`
}

// Stats are the aggregate counts shown on the public recap.
type Stats struct {
	Total                 int `json:"total"`
	Accommodation2Nights  int `json:"accommodation2nights"`
	Accommodation1Night   int `json:"accommodation1night"`
	HelpSaturdayMorning   int `json:"helpSaturdayMorning"`
	HelpSaturdayAfternoon int `json:"helpSaturdayAfternoon"`
	HelpSundayMorning     int `json:"helpSundayMorning"`
	HelpSundayAfternoon   int `json:"helpSundayAfternoon"`
}

func flagToBool(v int) bool { return v != 0 }

func boolToFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Services nests the flat columns into the wire shape. A zero or absent
// column reads as false.
func (r *Registration) Services() ServiceFlags {
	return ServiceFlags{
		Accommodation2Nights:  flagToBool(r.Accommodation2Nights),
		Accommodation1Night:   flagToBool(r.Accommodation1Night),
		HelpSaturdayMorning:   flagToBool(r.HelpSaturdayMorning),
		HelpSaturdayAfternoon: flagToBool(r.HelpSaturdayAfternoon),
		HelpSundayMorning:     flagToBool(r.HelpSundayMorning),
		HelpSundayAfternoon:   flagToBool(r.HelpSundayAfternoon),
	}
}

// SetServices flattens the wire shape back into the 0/1 columns.
func (r *Registration) SetServices(s ServiceFlags) {
	r.Accommodation2Nights = boolToFlag(s.Accommodation2Nights)
	r.Accommodation1Night = boolToFlag(s.Accommodation1Night)
	r.HelpSaturdayMorning = boolToFlag(s.HelpSaturdayMorning)
	r.HelpSaturdayAfternoon = boolToFlag(s.HelpSaturdayAfternoon)
	r.HelpSundayMorning = boolToFlag(s.HelpSundayMorning)
	r.HelpSundayAfternoon = boolToFlag(s.HelpSundayAfternoon)
}

func (r *Registration) View() RegistrationView {
	return RegistrationView{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		PlayerFirstName: r.PlayerFirstName,
		Category:        r.Category,
		Services:        r.Services(),
		Timestamp:       r.Timestamp,
	}
}

func (r *Registration) PublicView() PublicRegistrationView {
	return PublicRegistrationView{
		ID:              r.ID,
		Name:            r.Name,
		PlayerFirstName: r.PlayerFirstName,
		Category:        r.Category,
		Services:        r.Services(),
		Timestamp:       r.Timestamp,
	}
}

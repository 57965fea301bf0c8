package domain

import "time"

// Day names used throughout the open-hours schema. Stored lower-cased.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// Days lists the seven canonical day names in week order.
var Days = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsDay reports whether name is one of the seven canonical day names.
func IsDay(name string) bool {
	for _, d := range Days {
		if d == name {
			return true
		}
	}
	return false
}

// OpenHour is one open interval within a single day. Start and End are
// times of day encoded as HHMM integers (700 = 7:00, 1900 = 19:00).
type OpenHour struct {
	Day   string
	Start int
	End   int
}

// Coordinates is a [longitude, latitude] pair, GeoJSON axis order.
type Coordinates struct {
	Longitude float64
	Latitude  float64
}

// Address is the stored form of a store address. State holds the
// two-letter code; expansion to {name, abbreviation} happens at read time.
type Address struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// AddressView is the display form of Address with the state code expanded
// through the state catalog.
type AddressView struct {
	Street  string
	City    string
	State   State
	Zip     string
	Country string
}

// SocialLinks holds the optional social profile URLs of a store.
type SocialLinks struct {
	Facebook  string
	Twitter   string
	Instagram string
	Pinterest string
	YouTube   string
}

// Store is a single retail location record.
type Store struct {
	ID           string
	Name         string
	URL          string
	Address      Address
	PhoneNumbers []string
	FaxNumbers   []string
	Emails       []string
	Website      string
	OpenHours    []OpenHour
	Location     Coordinates
	Social       SocialLinks
	Closed       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StoreView is the read shape of a Store: identical to Store except the
// address carries the expanded state object.
type StoreView struct {
	ID           string
	Name         string
	URL          string
	Address      AddressView
	PhoneNumbers []string
	FaxNumbers   []string
	Emails       []string
	Website      string
	OpenHours    []OpenHour
	Location     Coordinates
	Social       SocialLinks
	Closed       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// View expands the store address through the state catalog. It fails with
// ErrUnknownState when the stored code does not resolve.
func (s Store) View() (StoreView, error) {
	state, err := LookupState(s.Address.State)
	if err != nil {
		return StoreView{}, err
	}
	return StoreView{
		ID:   s.ID,
		Name: s.Name,
		URL:  s.URL,
		Address: AddressView{
			Street:  s.Address.Street,
			City:    s.Address.City,
			State:   state,
			Zip:     s.Address.Zip,
			Country: s.Address.Country,
		},
		PhoneNumbers: append([]string{}, s.PhoneNumbers...),
		FaxNumbers:   append([]string{}, s.FaxNumbers...),
		Emails:       append([]string{}, s.Emails...),
		Website:      s.Website,
		OpenHours:    append([]OpenHour{}, s.OpenHours...),
		Location:     s.Location,
		Social:       s.Social,
		Closed:       s.Closed,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}, nil
}

// StoreUpdate is a sparse partial update. Nil fields are left untouched;
// absence never clears a stored value.
type StoreUpdate struct {
	Name    *string
	URL     *string
	Website *string
	Social  *SocialLinks
}

// Empty reports whether the update carries no fields at all.
func (u StoreUpdate) Empty() bool {
	return u.Name == nil && u.URL == nil && u.Website == nil && u.Social == nil
}

package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// AddressDocument is the embedded address of a store document. State holds
// the raw two-letter code; expansion happens when mapping to the domain view.
type AddressDocument struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	Zip     string `bson:"zip"`
	Country string `bson:"country"`
}

// OpenHourDocument is one open interval, times in HHMM form.
type OpenHourDocument struct {
	Day   string `bson:"day"`
	Start int    `bson:"start"`
	End   int    `bson:"end"`
}

// GeoPointDocument is a GeoJSON Point, coordinates in [longitude, latitude]
// order. The collection carries a 2dsphere index over this field.
type GeoPointDocument struct {
	Type        string     `bson:"type"`
	Coordinates [2]float64 `bson:"coordinates"`
}

// SocialDocument holds the optional social profile URLs.
type SocialDocument struct {
	Facebook  string `bson:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty"`
	Pinterest string `bson:"pinterest,omitempty"`
	YouTube   string `bson:"youtube,omitempty"`
}

// StoreDocument is the MongoDB schema of a store record.
type StoreDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	URL          string             `bson:"url,omitempty"`
	Address      AddressDocument    `bson:"address"`
	PhoneNumbers []string           `bson:"phone_numbers,omitempty"`
	FaxNumbers   []string           `bson:"fax_numbers,omitempty"`
	Emails       []string           `bson:"emails,omitempty"`
	Website      string             `bson:"website,omitempty"`
	OpenHours    []OpenHourDocument `bson:"open_hours,omitempty"`
	Location     GeoPointDocument   `bson:"location"`
	Social       SocialDocument     `bson:"social,omitempty"`
	Closed       bool               `bson:"closed"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// mapStoreDocument converts a Mongo document into the domain entity.
func mapStoreDocument(doc StoreDocument) domain.Store {
	hours := make([]domain.OpenHour, 0, len(doc.OpenHours))
	for _, h := range doc.OpenHours {
		hours = append(hours, domain.OpenHour{Day: h.Day, Start: h.Start, End: h.End})
	}

	return domain.Store{
		ID:   doc.ID.Hex(),
		Name: doc.Name,
		URL:  doc.URL,
		Address: domain.Address{
			Street:  doc.Address.Street,
			City:    doc.Address.City,
			State:   doc.Address.State,
			Zip:     doc.Address.Zip,
			Country: doc.Address.Country,
		},
		PhoneNumbers: append([]string{}, doc.PhoneNumbers...),
		FaxNumbers:   append([]string{}, doc.FaxNumbers...),
		Emails:       append([]string{}, doc.Emails...),
		Website:      doc.Website,
		OpenHours:    hours,
		Location: domain.Coordinates{
			Longitude: doc.Location.Coordinates[0],
			Latitude:  doc.Location.Coordinates[1],
		},
		Social: domain.SocialLinks{
			Facebook:  doc.Social.Facebook,
			Twitter:   doc.Social.Twitter,
			Instagram: doc.Social.Instagram,
			Pinterest: doc.Social.Pinterest,
			YouTube:   doc.Social.YouTube,
		},
		Closed:    doc.Closed,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// buildStoreDocument converts a domain store into its Mongo document for
// bulk insertion, assigning a fresh id and timestamps.
func buildStoreDocument(store domain.Store, now time.Time) StoreDocument {
	hours := make([]OpenHourDocument, 0, len(store.OpenHours))
	for _, h := range store.OpenHours {
		hours = append(hours, OpenHourDocument{Day: h.Day, Start: h.Start, End: h.End})
	}

	return StoreDocument{
		ID:   primitive.NewObjectID(),
		Name: store.Name,
		URL:  store.URL,
		Address: AddressDocument{
			Street:  store.Address.Street,
			City:    store.Address.City,
			State:   store.Address.State,
			Zip:     store.Address.Zip,
			Country: store.Address.Country,
		},
		PhoneNumbers: store.PhoneNumbers,
		FaxNumbers:   store.FaxNumbers,
		Emails:       store.Emails,
		Website:      store.Website,
		OpenHours:    hours,
		Location: GeoPointDocument{
			Type:        "Point",
			Coordinates: [2]float64{store.Location.Longitude, store.Location.Latitude},
		},
		Social: SocialDocument{
			Facebook:  store.Social.Facebook,
			Twitter:   store.Social.Twitter,
			Instagram: store.Social.Instagram,
			Pinterest: store.Social.Pinterest,
			YouTube:   store.Social.YouTube,
		},
		Closed:    store.Closed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

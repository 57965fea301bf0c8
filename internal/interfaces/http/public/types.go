package public

import (
	"github.com/retailatlas/store-locator/api/internal/domain"
	"github.com/retailatlas/store-locator/api/internal/query"
)

type stateResponse struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type addressResponse struct {
	Street  string        `json:"street"`
	City    string        `json:"city"`
	State   stateResponse `json:"state"`
	Zip     string        `json:"zip"`
	Country string        `json:"country"`
}

// openHourResponse keeps the feed's start/end pair under the read-side
// open/close names.
type openHourResponse struct {
	Day   string `json:"day"`
	Open  int    `json:"open"`
	Close int    `json:"close"`
}

type coordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type socialResponse struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

type storeResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	URL          string              `json:"url,omitempty"`
	Address      addressResponse     `json:"address"`
	PhoneNumbers []string            `json:"phone_numbers"`
	FaxNumbers   []string            `json:"fax_numbers"`
	Emails       []string            `json:"emails"`
	Website      string              `json:"website,omitempty"`
	OpenHours    []openHourResponse  `json:"open_hours"`
	Coordinates  coordinatesResponse `json:"coordinates"`
	Social       socialResponse      `json:"social"`
	Closed       bool                `json:"closed"`
}

type storeListResponse struct {
	Items []storeResponse `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// storeQueryRequest is the body of POST /stores/query: the full nested
// filter plus pagination. Nil page/limit fall back to the defaults.
type storeQueryRequest struct {
	Filter        *query.StoreFilter `json:"filter,omitempty"`
	Page          *int               `json:"page,omitempty"`
	Limit         *int               `json:"limit,omitempty"`
	IncludeClosed bool               `json:"include_closed,omitempty"`
}

func buildStoreResponse(view domain.StoreView) storeResponse {
	hours := make([]openHourResponse, 0, len(view.OpenHours))
	for _, h := range view.OpenHours {
		hours = append(hours, openHourResponse{Day: h.Day, Open: h.Start, Close: h.End})
	}

	return storeResponse{
		ID:   view.ID,
		Name: view.Name,
		URL:  view.URL,
		Address: addressResponse{
			Street: view.Address.Street,
			City:   view.Address.City,
			State: stateResponse{
				Name:         view.Address.State.Name,
				Abbreviation: view.Address.State.Abbreviation,
			},
			Zip:     view.Address.Zip,
			Country: view.Address.Country,
		},
		PhoneNumbers: view.PhoneNumbers,
		FaxNumbers:   view.FaxNumbers,
		Emails:       view.Emails,
		Website:      view.Website,
		OpenHours:    hours,
		Coordinates: coordinatesResponse{
			Latitude:  view.Location.Latitude,
			Longitude: view.Location.Longitude,
		},
		Social: socialResponse{
			Facebook:  view.Social.Facebook,
			Twitter:   view.Social.Twitter,
			Instagram: view.Social.Instagram,
			Pinterest: view.Social.Pinterest,
			YouTube:   view.Social.YouTube,
		},
		Closed: view.Closed,
	}
}

func buildStoreListResponse(views []domain.StoreView, page, limit int) storeListResponse {
	items := make([]storeResponse, 0, len(views))
	for _, view := range views {
		items = append(items, buildStoreResponse(view))
	}
	return storeListResponse{Items: items, Page: page, Limit: limit}
}

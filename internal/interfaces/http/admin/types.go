package admin

import (
	"time"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// storeUpdateRequest is the sparse partial accepted by PATCH. Absent fields
// leave the stored values untouched.
type storeUpdateRequest struct {
	Name    *string             `json:"name,omitempty"`
	URL     *string             `json:"url,omitempty"`
	Website *string             `json:"website,omitempty"`
	Socials *socialLinksRequest `json:"socials,omitempty"`
}

type socialLinksRequest struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

func (r storeUpdateRequest) toDomain() domain.StoreUpdate {
	update := domain.StoreUpdate{
		Name:    r.Name,
		URL:     r.URL,
		Website: r.Website,
	}
	if r.Socials != nil {
		update.Social = &domain.SocialLinks{
			Facebook:  r.Socials.Facebook,
			Twitter:   r.Socials.Twitter,
			Instagram: r.Socials.Instagram,
			Pinterest: r.Socials.Pinterest,
			YouTube:   r.Socials.YouTube,
		}
	}
	return update
}

type storeImportRequest struct {
	SourceURI string `json:"source_uri,omitempty"`
}

type storeImportResponse struct {
	Count int `json:"count"`
}

// adminStoreResponse confirms the state of a mutated store.
type adminStoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url,omitempty"`
	Website   string    `json:"website,omitempty"`
	Closed    bool      `json:"closed"`
	UpdatedAt time.Time `json:"updated_at"`
}

func buildAdminStoreResponse(view domain.StoreView) adminStoreResponse {
	return adminStoreResponse{
		ID:        view.ID,
		Name:      view.Name,
		URL:       view.URL,
		Website:   view.Website,
		Closed:    view.Closed,
		UpdatedAt: view.UpdatedAt,
	}
}

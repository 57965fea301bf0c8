// Package ingest is the one-shot bulk loader converting the external CSV
// feed into normalized store records.
package ingest

import (
	"context"
	"io"
	"math"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// Feed column names, exactly as the external source publishes them.
const (
	colName      = "name"
	colURL       = "url"
	colStreet    = "street_address"
	colCity      = "city"
	colState     = "state"
	colZip       = "zip_code"
	colCountry   = "country"
	colPhone1    = "phone_number_1"
	colPhone2    = "phone_number_2"
	colFax1      = "fax_1"
	colFax2      = "fax_2"
	colEmail1    = "email_1"
	colEmail2    = "email_2"
	colWebsite   = "website"
	colOpenHours = "open_hours"
	colLatitude  = "latitude"
	colLongitude = "longitude"
	colFacebook  = "facebook"
	colTwitter   = "twitter"
	colInstagram = "instagram"
	colPinterest = "pinterest"
	colYouTube   = "youtube"
)

// ReadStores consumes the whole feed and returns the batch of normalized
// store records. A single malformed row fails the call: rows are collected
// into one batch before any persistence occurs, so the semantics are
// bulk-or-nothing.
func ReadStores(ctx context.Context, r io.Reader) ([]domain.Store, error) {
	rows, errs := StreamRows(ctx, r)

	stores := make([]domain.Store, 0, 256)
	for row := range rows {
		store, err := buildStore(row)
		if err != nil {
			// Drain so the producer goroutine can finish its send and
			// exit; the context may outlive this call.
			for range rows {
			}
			<-errs
			return nil, eris.Wrapf(err, "ingest: row %d", len(stores)+1)
		}
		stores = append(stores, store)
	}
	if err := <-errs; err != nil {
		return nil, err
	}

	zap.L().Info("feed parsed", zap.Int("stores", len(stores)))
	return stores, nil
}

// buildStore normalizes one feed row. The state column is stored as given;
// it is only resolved against the state catalog when the address is
// expanded at read time.
func buildStore(row Row) (domain.Store, error) {
	hours, err := ParseWeeklyHours(row[colOpenHours])
	if err != nil {
		return domain.Store{}, err
	}

	return domain.Store{
		Name: row[colName],
		URL:  row[colURL],
		Address: domain.Address{
			Street:  row[colStreet],
			City:    row[colCity],
			State:   row[colState],
			Zip:     row[colZip],
			Country: row[colCountry],
		},
		PhoneNumbers: nonEmpty(row[colPhone1], row[colPhone2]),
		FaxNumbers:   nonEmpty(row[colFax1], row[colFax2]),
		Emails:       nonEmpty(row[colEmail1], row[colEmail2]),
		Website:      row[colWebsite],
		OpenHours:    hours,
		Location: domain.Coordinates{
			Longitude: lenientFloat(row[colLongitude]),
			Latitude:  lenientFloat(row[colLatitude]),
		},
		Social: domain.SocialLinks{
			Facebook:  row[colFacebook],
			Twitter:   row[colTwitter],
			Instagram: row[colInstagram],
			Pinterest: row[colPinterest],
			YouTube:   row[colYouTube],
		},
	}, nil
}

// nonEmpty keeps the non-empty values in source order.
func nonEmpty(values ...string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}

// lenientFloat parses a coordinate, defaulting malformed or non-finite feed
// values to 0 rather than failing the row.
func lenientFloat(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

package ingest

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

const feedHeader = "name,url,street_address,city,state,zip_code,country," +
	"phone_number_1,phone_number_2,fax_1,fax_2,email_1,email_2,website," +
	"open_hours,latitude,longitude,facebook,twitter,instagram,pinterest,youtube"

func TestReadStores(t *testing.T) {
	feed := feedHeader + "\n" +
		`Corner Shop,https://example.com/corner,1 Main St,Albany,NY,12207,US,` +
		`518-555-0100,,518-555-0101,,corner@example.com,,https://corner.example.com,` +
		`"Monday 7:20 AM - 10:40 PM",42.65,-73.75,fb,tw,ig,pin,yt` + "\n"

	stores, err := ReadStores(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, stores, 1)

	store := stores[0]
	assert.Equal(t, "Corner Shop", store.Name)
	assert.Equal(t, "NY", store.Address.State)
	assert.Equal(t, []string{"518-555-0100"}, store.PhoneNumbers)
	assert.Equal(t, []string{"518-555-0101"}, store.FaxNumbers)
	assert.Equal(t, []string{"corner@example.com"}, store.Emails)
	assert.Equal(t, []domain.OpenHour{{Day: "monday", Start: 720, End: 2240}}, store.OpenHours)
	assert.Equal(t, -73.75, store.Location.Longitude)
	assert.Equal(t, 42.65, store.Location.Latitude)
	assert.Equal(t, "ig", store.Social.Instagram)
}

func TestReadStoresLenientCoordinates(t *testing.T) {
	feed := feedHeader + "\n" +
		`A,,,,,,,,,,,,,,"Monday 9:00 AM - 5:00 PM",abc,NaN,,,,,` + "\n"

	stores, err := ReadStores(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, domain.Coordinates{}, stores[0].Location)
}

func TestReadStoresInvalidStateKept(t *testing.T) {
	// State validation is deferred to read time; ingestion stores the
	// column verbatim.
	feed := feedHeader + "\n" +
		`A,,,,Narnia,,,,,,,,,,"Monday 9:00 AM - 5:00 PM",0,0,,,,,` + "\n"

	stores, err := ReadStores(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)
	assert.Equal(t, "Narnia", stores[0].Address.State)
}

func TestReadStoresBadHoursFailsBatch(t *testing.T) {
	feed := feedHeader + "\n" +
		`A,,,,,,,,,,,,,,"Monday 9:00 AM - 5:00 PM",0,0,,,,,` + "\n" +
		`B,,,,,,,,,,,,,,"Monday whenever",0,0,,,,,` + "\n"

	_, err := ReadStores(context.Background(), strings.NewReader(feed))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedSourceData))
}

func TestReadStoresBadRowReleasesProducer(t *testing.T) {
	// More rows than the channel buffer holds, with the failure up front:
	// the reader has to drain the stream so the producing goroutine is not
	// left blocked on a send for the lifetime of the context.
	var feed strings.Builder
	feed.WriteString(feedHeader + "\n")
	feed.WriteString(`Bad,,,,,,,,,,,,,,"Monday whenever",0,0,,,,,` + "\n")
	for i := 0; i < 200; i++ {
		feed.WriteString(`A,,,,,,,,,,,,,,"Monday 9:00 AM - 5:00 PM",0,0,,,,,` + "\n")
	}

	before := runtime.NumGoroutine()
	_, err := ReadStores(context.Background(), strings.NewReader(feed.String()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedSourceData))
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, 10*time.Millisecond)
}

func TestStreamRowsSkipsEmptyRows(t *testing.T) {
	rows, errs := StreamRows(context.Background(), strings.NewReader("a,b\n1,2\n,\n3,4\n"))

	var got []Row
	for row := range rows {
		got = append(got, row)
	}
	require.NoError(t, <-errs)
	require.Len(t, got, 2)
	assert.Equal(t, Row{"a": "1", "b": "2"}, got[0])
	assert.Equal(t, Row{"a": "3", "b": "4"}, got[1])
}

func TestStreamRowsShortRow(t *testing.T) {
	// Rows narrower than the header keep the columns they have.
	rows, errs := StreamRows(context.Background(), strings.NewReader("a,b,c\n1,2\n"))

	row := <-rows
	require.NoError(t, <-errs)
	assert.Equal(t, Row{"a": "1", "b": "2"}, row)
}

func TestStreamRowsWideRowFails(t *testing.T) {
	rows, errs := StreamRows(context.Background(), strings.NewReader("a,b\n1,2,3\n"))

	for range rows {
	}
	err := <-errs
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedSourceData))
}

func TestStreamRowsEmptyFeed(t *testing.T) {
	rows, errs := StreamRows(context.Background(), strings.NewReader(""))

	for range rows {
		t.Fatal("no rows expected")
	}
	assert.NoError(t, <-errs)
}

package ingest

import (
	"context"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
)

// FetchFeed retrieves the CSV feed over HTTP. The caller owns closing the
// returned body.
func FetchFeed(ctx context.Context, client *http.Client, uri string) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, eris.Wrap(err, "feed: build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "feed: fetch")
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, eris.Errorf("feed: unexpected status %d from %s", resp.StatusCode, uri)
	}
	return resp.Body, nil
}

package ingest

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// Row is one feed record keyed by header column name.
type Row map[string]string

// StreamRows reads the CSV feed and sends header-keyed rows to a channel.
// The first record is taken as the header row. The caller must drain the
// row channel; both channels are closed when processing completes. The
// resulting sequence is one-pass and non-restartable.
func StreamRows(ctx context.Context, r io.Reader) (<-chan Row, <-chan error) {
	rowCh := make(chan Row, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1

		header, err := reader.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			errCh <- eris.Wrap(err, "csv: read header")
			return
		}

		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "csv: read row")
				return
			}
			if empty(record) {
				continue
			}
			if len(record) > len(header) {
				errCh <- eris.Wrapf(domain.ErrMalformedSourceData, "csv: row has %d fields, header has %d", len(record), len(header))
				return
			}

			row := make(Row, len(header))
			for i, field := range record {
				row[header[i]] = field
			}

			select {
			case rowCh <- row:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}

func empty(record []string) bool {
	for _, field := range record {
		if field != "" {
			return false
		}
	}
	return true
}

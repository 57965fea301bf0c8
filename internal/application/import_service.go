package application

import (
	"context"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/retailatlas/store-locator/api/internal/domain"
	"github.com/retailatlas/store-locator/api/internal/ingest"
)

// importService loads the store collection from the external CSV feed in a
// single bulk insert. The whole batch is validated before anything is
// written; a partial insert failure afterwards is reported, not rolled back.
type importService struct {
	repo       StoreRepository
	httpClient *http.Client
	defaultURI string
}

// NewImportService creates a new import service. defaultURI is used when a
// caller provides no source.
func NewImportService(repo StoreRepository, httpClient *http.Client, defaultURI string) ImportService {
	return &importService{repo: repo, httpClient: httpClient, defaultURI: defaultURI}
}

func (s *importService) ImportFromCSV(ctx context.Context, sourceURI string) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, eris.Wrap(err, "import: count stores")
	}
	if count > 0 {
		return 0, eris.Wrapf(domain.ErrStoresExist, "import: %d records present", count)
	}

	uri := sourceURI
	if uri == "" {
		uri = s.defaultURI
	}
	if uri == "" {
		return 0, eris.Wrap(domain.ErrInvalidArgument, "import: no source uri configured")
	}

	body, err := ingest.FetchFeed(ctx, s.httpClient, uri)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	stores, err := ingest.ReadStores(ctx, body)
	if err != nil {
		return 0, err
	}

	inserted, err := s.repo.InsertMany(ctx, stores)
	if err != nil {
		return 0, eris.Wrap(err, "import: bulk insert")
	}

	zap.L().Info("store import finished", zap.String("source", uri), zap.Int("inserted", inserted))
	return inserted, nil
}

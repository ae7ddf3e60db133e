package serviceImp

import (
	"errors"
	"time"

	"harvesta/pkg/ingest"
	"harvesta/pkg/kobo"
	"harvesta/pkg/kobo/repository"
)

// SyncService glues the KoboToolbox client to the ingestion batch runner.
// The stored config row wins; the env-derived fallback covers fresh
// deployments that have not saved one yet.
type SyncService struct {
	repo     repository.KoboRepository
	runner   *ingest.Runner
	fallback kobo.Config
}

func New(repo repository.KoboRepository, runner *ingest.Runner, fallback kobo.Config) *SyncService {
	return &SyncService{repo: repo, runner: runner, fallback: fallback}
}

func (s *SyncService) config() (kobo.Config, *time.Time, error) {
	row, err := s.repo.Get()
	if err != nil {
		return kobo.Config{}, nil, err
	}
	if row == nil {
		return s.fallback, nil, nil
	}
	return kobo.Config{APIURL: row.APIURL, AssetID: row.AssetID, Token: row.APIToken}, row.LastSyncTime, nil
}

// Sync fetches up to limit submissions newer than the last sync watermark
// and runs them through the batch runner. A fetch failure fails the whole
// attempt; records persisted by prior syncs are untouched.
func (s *SyncService) Sync(limit int, userID string) (ingest.Report, error) {
	cfg, since, err := s.config()
	if err != nil {
		return ingest.Report{}, err
	}

	subs, err := kobo.FetchSubmissions(cfg, kobo.FetchOptions{Limit: limit, Since: since})
	if err != nil {
		return ingest.Report{}, err
	}

	rep := s.runner.RunKobo(subs, userID)
	if err := s.repo.MarkSynced(time.Now()); err != nil {
		rep.Errors = append(rep.Errors, "mark synced: "+err.Error())
	}
	return rep, nil
}

func (s *SyncService) TestConnection() error {
	cfg, _, err := s.config()
	if err != nil {
		return err
	}
	return kobo.TestConnection(cfg)
}

func (s *SyncService) SaveConfig(apiURL, assetID, token string) error {
	if apiURL == "" || assetID == "" || token == "" {
		return errors.New("api_url, asset_id and api_token are required")
	}
	return s.repo.Save(apiURL, assetID, token)
}

func (s *SyncService) GetConfig() (kobo.Config, *time.Time, error) {
	return s.config()
}

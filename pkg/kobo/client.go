package kobo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"harvesta/pkg/ingest"
)

type Config struct {
	APIURL  string
	AssetID string
	Token   string
}

type FetchOptions struct {
	Limit  int
	Offset int
	// Since keeps only submissions whose provider-reported submission
	// time is strictly after it.
	Since *time.Time
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// FetchSubmissions pulls one page of raw submissions from the KoboToolbox
// data endpoint. A missing token is a precondition failure surfaced before
// any network call; network and non-2xx failures abort the whole fetch.
func FetchSubmissions(cfg Config, opts FetchOptions) ([]ingest.KoboSubmission, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("kobo api token is not configured")
	}

	url := fmt.Sprintf("%s/api/v2/assets/%s/data/?format=json",
		strings.TrimRight(cfg.APIURL, "/"), cfg.AssetID)
	if opts.Limit > 0 {
		url += fmt.Sprintf("&limit=%d", opts.Limit)
	}
	if opts.Offset > 0 {
		url += fmt.Sprintf("&start=%d", opts.Offset)
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kobo api request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("kobo api error: %s", resp.Status)
	}

	var body struct {
		Results []ingest.KoboSubmission `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("kobo api response: %w", err)
	}

	subs := body.Results
	if opts.Since != nil {
		filtered := subs[:0]
		for _, sub := range subs {
			t, err := ingest.ParseFieldTime(sub.SubmissionTime)
			if err != nil {
				continue
			}
			if t.After(*opts.Since) {
				filtered = append(filtered, sub)
			}
		}
		subs = filtered
	}
	return subs, nil
}

// TestConnection is a connectivity probe: fetch one submission and discard
// it, so the UI can validate configuration without importing data.
func TestConnection(cfg Config) error {
	_, err := FetchSubmissions(cfg, FetchOptions{Limit: 1})
	return err
}

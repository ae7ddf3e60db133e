package repository

import (
	"time"

	"harvesta/entities"
)

type KoboRepository interface {
	// Get returns the stored config, or nil when none has been saved.
	Get() (*entities.KoboConfig, error)
	Save(apiURL, assetID, token string) error
	MarkSynced(t time.Time) error
}

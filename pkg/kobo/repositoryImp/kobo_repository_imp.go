package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"harvesta/entities"
	"harvesta/pkg/kobo/repository"
)

type koboRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KoboRepository { return &koboRepo{db} }

func (r *koboRepo) Get() (*entities.KoboConfig, error) {
	var cfg entities.KoboConfig
	if err := r.db.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *koboRepo) Save(apiURL, assetID, token string) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(&entities.KoboConfig{
			APIURL: apiURL, AssetID: assetID, APIToken: token,
		}).Error
	}
	return r.db.Model(existing).Updates(map[string]any{
		"api_url": apiURL, "asset_id": assetID, "api_token": token,
	}).Error
}

func (r *koboRepo) MarkSynced(t time.Time) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	return r.db.Model(existing).Update("last_sync_time", t).Error
}

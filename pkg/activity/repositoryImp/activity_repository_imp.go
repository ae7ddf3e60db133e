package repositoryImp

import (
	"log"

	"gorm.io/gorm"

	"harvesta/entities"
	"harvesta/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) Log(l *entities.ActivityLog) {
	if err := r.db.Create(l).Error; err != nil {
		log.Printf("[activity] log failed: %v", err)
	}
}

func (r *activityRepo) List(limit int) ([]entities.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entities.ActivityLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

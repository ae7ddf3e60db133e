package repositoryImp

import (
	"gorm.io/gorm"

	"harvesta/entities"
	"harvesta/pkg/attachment/repository"
)

type attachmentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AttachmentRepository { return &attachmentRepo{db} }

func (r *attachmentRepo) Create(a *entities.HarvestAttachment) error {
	return r.db.Create(a).Error
}

func (r *attachmentRepo) ByHarvest(harvestID uint) ([]entities.HarvestAttachment, error) {
	var out []entities.HarvestAttachment
	err := r.db.Where("harvest_id = ? AND is_deleted = ?", harvestID, false).Find(&out).Error
	return out, err
}

func (r *attachmentRepo) SoftDelete(id uint) error {
	return r.db.Model(&entities.HarvestAttachment{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

package repository

import "harvesta/entities"

type AttachmentRepository interface {
	Create(a *entities.HarvestAttachment) error
	// ByHarvest returns live (not soft-deleted) attachments.
	ByHarvest(harvestID uint) ([]entities.HarvestAttachment, error)
	// SoftDelete flags the row; physical removal is the orphan job's call.
	SoftDelete(id uint) error
}

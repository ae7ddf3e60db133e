package maintenance

import (
	"gorm.io/gorm"

	"harvesta/entities"
)

// Boxes heavier than this are sensor or entry error, not produce.
const maxBoxGrams = 50_000

// Jobs are the idempotent cleanup operations over the persisted set. Each
// is safe to run repeatedly and in any order.
type Jobs struct{ db *gorm.DB }

func New(db *gorm.DB) *Jobs { return &Jobs{db} }

// FilterWeights deletes harvest rows whose box weight falls outside
// (0, 50] kg. Returns the number of rows removed; a second run removes
// zero.
func (j *Jobs) FilterWeights() (int64, error) {
	res := j.db.Where("box_weight_grams > ? OR box_weight_grams <= 0", maxBoxGrams).
		Delete(&entities.Harvest{})
	return res.RowsAffected, res.Error
}

// NormalizeGrades re-applies quality-label canonicalization to stored
// rows. Rows whose normalized form matches no known grade are left
// untouched, never defaulted.
func (j *Jobs) NormalizeGrades() (int64, error) {
	var total int64
	for _, grade := range []string{
		entities.GradeFirst, entities.GradeSecond, entities.GradeWaste,
	} {
		res := j.db.Model(&entities.Harvest{}).
			Where("LOWER(REPLACE(quality_grade, ' ', '_')) = ? AND quality_grade <> ?", grade, grade).
			Update("quality_grade", grade)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}

type OrphanReport struct {
	Before  int64 `json:"before"`
	Removed int64 `json:"removed"`
	After   int64 `json:"after"`
}

// RemoveOrphanAttachments physically deletes attachment rows whose parent
// harvest is gone. One set-based delete, so a harvest deleted concurrently
// cannot slip a stale row past a fetched id list.
func (j *Jobs) RemoveOrphanAttachments() (OrphanReport, error) {
	var rep OrphanReport
	orphans := "harvest_id NOT IN (SELECT id FROM harvests)"

	if err := j.db.Model(&entities.HarvestAttachment{}).Where(orphans).
		Count(&rep.Before).Error; err != nil {
		return rep, err
	}

	res := j.db.Where(orphans).Delete(&entities.HarvestAttachment{})
	if res.Error != nil {
		return rep, res.Error
	}
	rep.Removed = res.RowsAffected

	err := j.db.Model(&entities.HarvestAttachment{}).Count(&rep.After).Error
	return rep, err
}

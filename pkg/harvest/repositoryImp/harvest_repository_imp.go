package repositoryImp

import (
	"gorm.io/gorm"

	"harvesta/entities"
	"harvesta/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(h *entities.Harvest) error { return r.db.Create(h).Error }

func (r *harvestRepo) FindByID(id uint) (*entities.Harvest, error) {
	var h entities.Harvest
	if err := r.db.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) scope(f repository.ListFilter) *gorm.DB {
	q := r.db.Model(&entities.Harvest{})
	if f.From != nil {
		q = q.Where("submission_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("submission_time <= ?", *f.To)
	}
	if f.Parcel != "" {
		q = q.Where("parcel LIKE ?", "%"+f.Parcel+"%")
	}
	if f.Grade != "" {
		q = q.Where("quality_grade = ?", f.Grade)
	}
	return q
}

func (r *harvestRepo) List(f repository.ListFilter) ([]repository.ListedHarvest, error) {
	var rows []entities.Harvest
	if err := r.scope(f).Order("submission_time DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]repository.ListedHarvest, len(rows))
	ids := make([]uint, len(rows))
	for i, h := range rows {
		out[i] = repository.ListedHarvest{Harvest: h}
		ids[i] = h.ID
	}
	if len(ids) == 0 {
		return out, nil
	}

	// First live attachment per harvest becomes the thumbnail.
	var atts []entities.HarvestAttachment
	if err := r.db.Where("harvest_id IN ? AND is_deleted = ?", ids, false).
		Order("id ASC").Find(&atts).Error; err != nil {
		return nil, err
	}
	thumbs := make(map[uint]string, len(atts))
	for _, a := range atts {
		if _, seen := thumbs[a.HarvestID]; !seen {
			thumbs[a.HarvestID] = a.SmallURL
		}
	}
	for i := range out {
		out[i].ThumbnailURL = thumbs[out[i].ID]
	}
	return out, nil
}

func (r *harvestRepo) Update(id uint, fields map[string]any) error {
	res := r.db.Model(&entities.Harvest{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *harvestRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Harvest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *harvestRepo) Stats(f repository.ListFilter) (repository.Stats, error) {
	var s repository.Stats
	err := r.scope(f).
		Select("COUNT(*) AS total_boxes, COALESCE(SUM(box_weight_grams),0) AS total_grams, COALESCE(AVG(box_weight_grams),0) AS avg_grams").
		Scan(&s).Error
	return s, err
}

func (r *harvestRepo) ByGrade(f repository.ListFilter) ([]repository.GradeStat, error) {
	var out []repository.GradeStat
	err := r.scope(f).
		Select("quality_grade AS grade, COUNT(*) AS count, COALESCE(SUM(box_weight_grams),0) AS total_grams").
		Group("quality_grade").
		Scan(&out).Error
	return out, err
}

func (r *harvestRepo) ByParcel(f repository.ListFilter) ([]repository.ParcelStat, error) {
	var out []repository.ParcelStat
	err := r.scope(f).
		Select("parcel, COUNT(*) AS count, COALESCE(SUM(box_weight_grams),0) AS total_grams").
		Group("parcel").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func (r *harvestRepo) TopCutters(limit int) ([]repository.CutterStat, error) {
	var out []repository.CutterStat
	err := r.db.Model(&entities.Harvest{}).
		Select("cutter_number, COUNT(*) AS count, COALESCE(SUM(box_weight_grams),0) AS total_grams, COALESCE(AVG(box_weight_grams),0) AS avg_grams").
		Where("cutter_number NOT IN ?", []string{
			entities.CutterIncomplete, entities.CutterSecond, entities.CutterWaste,
		}).
		Group("cutter_number").
		Order("total_grams DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

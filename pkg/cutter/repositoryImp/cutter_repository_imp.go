package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"harvesta/entities"
	"harvesta/pkg/cutter/repository"
)

type cutterRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CutterRepository { return &cutterRepo{db} }

func (r *cutterRepo) List() ([]entities.CutterConfig, error) {
	var out []entities.CutterConfig
	return out, r.db.Order("cutter_number ASC").Find(&out).Error
}

func (r *cutterRepo) ByNumber(number string) (*entities.CutterConfig, error) {
	var c entities.CutterConfig
	if err := r.db.Where("cutter_number = ?", number).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cutterRepo) Upsert(number, name string, active *bool) error {
	existing, err := r.ByNumber(number)
	if err != nil {
		return err
	}
	if existing == nil {
		c := entities.CutterConfig{CutterNumber: number, CustomName: name, IsActive: true}
		if active != nil {
			c.IsActive = *active
		}
		return r.db.Create(&c).Error
	}
	fields := map[string]any{"custom_name": name}
	if active != nil {
		fields["is_active"] = *active
	}
	return r.db.Model(existing).Updates(fields).Error
}

func (r *cutterRepo) Delete(number string) error {
	return r.db.Where("cutter_number = ?", number).Delete(&entities.CutterConfig{}).Error
}

func (r *cutterRepo) NameMap() (map[string]string, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(list))
	for _, c := range list {
		if c.CustomName != "" {
			m[c.CutterNumber] = c.CustomName
		}
	}
	return m, nil
}

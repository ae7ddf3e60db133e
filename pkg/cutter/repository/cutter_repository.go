package repository

import "harvesta/entities"

type CutterRepository interface {
	List() ([]entities.CutterConfig, error)
	ByNumber(number string) (*entities.CutterConfig, error)
	Upsert(number, name string, active *bool) error
	Delete(number string) error
	// NameMap returns cutter number -> custom display name.
	NameMap() (map[string]string, error)
}

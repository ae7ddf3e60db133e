package repository

import "harvesta/entities"

type ActivityRepository interface {
	// Log is best-effort: audit writes never fail the operation they
	// describe.
	Log(l *entities.ActivityLog)
	List(limit int) ([]entities.ActivityLog, error)
}

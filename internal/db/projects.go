package db

import (
	"context"

	"github.com/cloudspace/csp/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SaveProject inserts a new project record. Records are append-only: there is
// no update or delete path anywhere in this service.
func SaveProject(ctx context.Context, db *gorm.DB, project *model.Project) error {
	wrapMsg := "unable to save the project record"

	err := db.WithContext(ctx).Create(project).Error
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}

// ListProjects returns all of the project records, newest first.
func ListProjects(ctx context.Context, db *gorm.DB) ([]model.Project, error) {
	wrapMsg := "unable to list the project records"
	var projects []model.Project

	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&projects).
		Error
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return projects, nil
}

package db

import (
	"context"

	"github.com/cloudspace/csp/internal/model"
	"gorm.io/gorm"
)

// ProjectStore bundles the project record operations behind a value the
// controllers can hold (and tests can substitute).
type ProjectStore struct {
	DB *gorm.DB
}

func (s *ProjectStore) SaveProject(ctx context.Context, project *model.Project) error {
	return SaveProject(ctx, s.DB, project)
}

func (s *ProjectStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	return ListProjects(ctx, s.DB)
}

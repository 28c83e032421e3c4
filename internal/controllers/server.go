package controllers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/cloudspace/csp/internal/identity"
	"github.com/cloudspace/csp/internal/model"
	"github.com/cloudspace/csp/internal/notifier"
	"github.com/cloudspace/csp/internal/provision"
	"github.com/cloudspace/csp/logging"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "controllers"})

// CredentialGenerator produces the random identity for a new tenant.
type CredentialGenerator interface {
	Generate() (*identity.Credential, error)
}

// Provisioner creates the tenant project on the platform.
type Provisioner interface {
	Provision(
		ctx context.Context,
		plan model.Plan,
		storageID string,
		storage model.StorageOption,
		cred *identity.Credential,
		description string,
	) (*provision.Result, error)
}

// PolicyIssuer grants the tenant user access to the new project's resources.
type PolicyIssuer interface {
	Issue(ctx context.Context, projectUUID, userUUID string) (string, error)
}

// ProjectRecorder persists and lists project records.
type ProjectRecorder interface {
	SaveProject(ctx context.Context, project *model.Project) error
	ListProjects(ctx context.Context) ([]model.Project, error)
}

// EventPublisher announces completed provisioning runs.
type EventPublisher interface {
	ProjectCreated(event *notifier.ProjectCreatedEvent) error
}

// Server defines the REST API of the cloud space provisioner.
type Server struct {
	Router  *echo.Echo
	DB      *sql.DB
	GORMDB  *gorm.DB
	Service string
	Title   string
	Version string

	Generator    CredentialGenerator
	Provisioner  Provisioner
	Recorder     ProjectRecorder
	PolicyIssuer PolicyIssuer
	Notifier     EventPublisher
}

// RootResponse describes the service for the health check endpoint.
//
// swagger:model
type RootResponse struct {
	Service string `json:"service"`
	Title   string `json:"title"`
	Version string `json:"version"`
}

// RootHandler is the handler for the GET / endpoint, which doubles as a
// health check.
func (s Server) RootHandler(ctx echo.Context) error {
	resp := RootResponse{
		Service: s.Service,
		Title:   s.Title,
		Version: s.Version,
	}
	return model.Success(ctx, resp, http.StatusOK)
}

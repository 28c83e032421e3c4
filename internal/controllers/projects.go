package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cloudspace/csp/internal/catalog"
	"github.com/cloudspace/csp/internal/httpmodel"
	"github.com/cloudspace/csp/internal/model"
	"github.com/cloudspace/csp/internal/notifier"
	"github.com/cloudspace/csp/internal/provision"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CreateProject is the handler for the POST /api/project/create endpoint. It
// runs the full provisioning pipeline: validate the selection against the
// catalog, generate a tenant credential, run the playbook, record the
// outcome, and issue the access policy. The last two steps are best-effort;
// only validation, generation, and provisioning can fail the request.
//
// swagger:route POST /api/project/create projects createProject
//
// # Create Project
//
// Provisions a new cloud space for a generated tenant identity.
//
// responses:
//
//	200: provisionResponse
//	400: badRequestResponse
//	500: internalServerErrorResponse
func (s Server) CreateProject(ctx echo.Context) error {
	log := log.WithFields(logrus.Fields{"context": "creating project"})

	context := ctx.Request().Context()

	// Parse and validate the request body.
	var req httpmodel.ProvisionRequest
	if err := ctx.Bind(&req); err != nil {
		return model.Error(ctx, "invalid request body", http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return model.Error(ctx, err.Error(), http.StatusBadRequest)
	}

	// Resolve the selection against the catalog. Nothing is launched for an
	// unknown plan or storage tier.
	plan, err := catalog.LookupPlan(req.Size)
	if err != nil {
		return model.Error(ctx, err.Error(), http.StatusBadRequest)
	}
	storage, err := catalog.LookupStorage(req.StorageBytes)
	if err != nil {
		return model.Error(ctx, err.Error(), http.StatusBadRequest)
	}
	price := plan.Price + storage.Price

	log = log.WithFields(logrus.Fields{"size": req.Size, "storage": storage.Display})
	log.Debug("resolved the plan and storage tier")

	// Generate the tenant identity.
	cred, err := s.Generator.Generate()
	if err != nil {
		log.Error(err.Error())
		return model.Error(ctx, "unable to generate the tenant credential", http.StatusInternalServerError)
	}

	log = log.WithFields(logrus.Fields{"project": cred.Name})
	log.Info("generated the tenant credential")

	// Provision the project on the platform.
	result, err := s.Provisioner.Provision(context, plan, req.StorageBytes, storage, cred, req.Description)
	if err != nil {
		log.Error(err.Error())
		var failure *provision.FailedError
		if errors.As(err, &failure) {
			return model.ErrorWithDetails(ctx, "failed to create project", diagnosticOutput(failure), http.StatusInternalServerError)
		}
		return model.Error(ctx, "failed to create project", http.StatusInternalServerError)
	}

	log.Info("provisioned the project")

	// Record the outcome. A failure here is logged and reported in the
	// response flag, but doesn't fail the request.
	record := &model.Project{
		Name:              cred.Name,
		Password:          cred.Password,
		Description:       req.Description,
		Configuration:     result.Configuration,
		VCPUsLimit:        plan.VCPUs,
		MemoryLimitGB:     plan.MemoryGB,
		StorageLimitBytes: storageLimitBytes(req.StorageBytes),
		Price:             price,
		ProjectURL:        result.ProjectURL,
		Status:            "created",
	}
	dbSuccess := true
	if err := s.Recorder.SaveProject(context, record); err != nil {
		log.Warnf("unable to record the project: %s", err.Error())
		dbSuccess = false
	}

	// Issue the access policy. Also best-effort.
	s.issuePolicy(ctx, result)

	// Announce the new project.
	if err := s.Notifier.ProjectCreated(&notifier.ProjectCreatedEvent{
		Name:          cred.Name,
		ProjectURL:    result.ProjectURL,
		Configuration: result.Configuration,
		Price:         price,
		CreatedAt:     time.Now(),
	}); err != nil {
		log.Warnf("unable to publish the project creation event: %s", err.Error())
	}

	return model.Success(ctx, httpmodel.ProvisionResponse{
		Success:       true,
		Message:       "Project created successfully",
		UserData:      cred,
		ProjectURL:    result.ProjectURL,
		Configuration: result.Configuration,
		Price:         price,
		DBSuccess:     dbSuccess,
	}, http.StatusOK)
}

// issuePolicy grants the tenant user access to the new project when the
// playbook output included both platform UUIDs. Failures are logged, never
// surfaced.
func (s Server) issuePolicy(ctx echo.Context, result *provision.Result) {
	log := log.WithFields(logrus.Fields{"context": "issuing policy"})

	if result.ProjectUUID == "" || result.UserUUID == "" {
		log.Error("skipping access policy issuance: playbook output did not include the project and user UUIDs")
		return
	}

	policyID, err := s.PolicyIssuer.Issue(ctx.Request().Context(), result.ProjectUUID, result.UserUUID)
	if err != nil {
		log.Error(err.Error())
		return
	}

	log.Infof("issued access control policy %s", policyID)
}

// GetProjects is the handler for the GET /api/projects endpoint.
//
// swagger:route GET /api/projects projects listProjects
//
// # List Projects
//
// Lists all provisioned cloud spaces, newest first.
//
// responses:
//
//	200: projectsResponse
//	500: internalServerErrorResponse
func (s Server) GetProjects(ctx echo.Context) error {
	log := log.WithFields(logrus.Fields{"context": "listing projects"})

	projects, err := s.Recorder.ListProjects(ctx.Request().Context())
	if err != nil {
		log.Error(err.Error())
		return model.Error(ctx, err.Error(), http.StatusInternalServerError)
	}

	log.Debug("listing projects from the database")

	return model.Success(ctx, projects, http.StatusOK)
}

// diagnosticOutput folds the captured process output into one diagnostic
// string for the error response.
func diagnosticOutput(failure *provision.FailedError) string {
	parts := make([]string, 0, 2)
	if out := strings.TrimSpace(failure.Output); out != "" {
		parts = append(parts, out)
	}
	if errOut := strings.TrimSpace(failure.Stderr); errOut != "" {
		parts = append(parts, errOut)
	}
	return strings.Join(parts, "\n")
}

// storageLimitBytes converts a catalog storage identifier to its numeric
// value. Identifiers are validated against the catalog before this point, so
// a parse failure can't happen here.
func storageLimitBytes(storageID string) int64 {
	n, _ := strconv.ParseInt(storageID, 10, 64)
	return n
}

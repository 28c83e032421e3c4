package httpmodel

import (
	"github.com/cloudspace/csp/internal/identity"
	"github.com/cloudspace/csp/internal/model"
)

// ProvisionResponse is the body of a successful project creation response.
//
// swagger:model
type ProvisionResponse struct {

	// Always true: failed requests use the error envelope instead
	Success bool `json:"success"`

	// A human-readable status message
	Message string `json:"message"`

	// The generated tenant credential
	UserData *identity.Credential `json:"userData,omitempty"`

	// The console URL for the new project
	ProjectURL string `json:"projectUrl,omitempty"`

	// A human-readable summary of the resolved configuration
	Configuration string `json:"configuration,omitempty"`

	// The computed monthly price
	Price int `json:"price,omitempty"`

	// Whether the outcome was recorded in the database. Recording is
	// best-effort, so this can be false on an otherwise successful request.
	DBSuccess bool `json:"dbSuccess"`
}

// OptionsResponse is the body of the catalog listing response.
//
// swagger:model
type OptionsResponse struct {

	// The available compute plans
	Plans map[string]model.Plan `json:"plans"`

	// The available storage tiers, keyed by capacity in bytes
	Storage map[string]model.StorageOption `json:"storage"`
}

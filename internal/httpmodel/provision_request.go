package httpmodel

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProvisionRequest is the body of a project creation request.
//
// swagger:model
type ProvisionRequest struct {

	// The compute plan identifier
	//
	// required: true
	Size string `json:"size" validate:"required"`

	// The storage tier identifier, a capacity in bytes
	//
	// required: true
	StorageBytes string `json:"storageBytes" validate:"required,numeric"`

	// Legacy field from the era before tenant identities were generated.
	// Accepted and ignored.
	ProjectName string `json:"projectName"`

	// An optional free-form description, passed through to the platform
	Description string `json:"description"`
}

// Validate verifies that the required fields are present. Catalog membership
// is checked separately so unknown selections produce a typed error.
func (r ProvisionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("missing or malformed parameters: size and storageBytes are required")
	}
	return nil
}

// Package catalog holds the fixed plan and storage tier tables and the price
// arithmetic over them. The tables are defined at startup and never change.
package catalog

import (
	"fmt"

	"github.com/cloudspace/csp/internal/model"
)

// InvalidSelectionError indicates that a caller asked for a plan or storage
// tier that isn't in the catalog.
type InvalidSelectionError struct {
	msg string
}

func (e *InvalidSelectionError) Error() string {
	return e.msg
}

// NewInvalidSelectionError returns an error for a selection outside the catalog.
func NewInvalidSelectionError(format string, args ...interface{}) *InvalidSelectionError {
	return &InvalidSelectionError{msg: fmt.Sprintf(format, args...)}
}

// plans defines the available compute sizing tiers.
var plans = map[string]model.Plan{
	"small":  {VCPUs: 10, MemoryGB: 20, Price: 500},
	"medium": {VCPUs: 20, MemoryGB: 40, Price: 900},
	"large":  {VCPUs: 30, MemoryGB: 50, Price: 1500},
}

// storageOptions defines the available storage tiers, keyed by capacity in bytes.
var storageOptions = map[string]model.StorageOption{
	"1000000000000": {Display: "1 TB", Price: 100},
	"2000000000000": {Display: "2 TB", Price: 190},
	"3000000000000": {Display: "3 TB", Price: 250},
}

// LookupPlan resolves a plan identifier.
func LookupPlan(id string) (model.Plan, error) {
	plan, ok := plans[id]
	if !ok {
		return model.Plan{}, NewInvalidSelectionError("invalid size '%s': must be small, medium, or large", id)
	}
	return plan, nil
}

// LookupStorage resolves a storage tier identifier.
func LookupStorage(id string) (model.StorageOption, error) {
	storage, ok := storageOptions[id]
	if !ok {
		return model.StorageOption{}, NewInvalidSelectionError("invalid storage size '%s'", id)
	}
	return storage, nil
}

// Price computes the monthly price for a plan and storage tier combination.
func Price(planID, storageID string) (int, error) {
	plan, err := LookupPlan(planID)
	if err != nil {
		return 0, err
	}
	storage, err := LookupStorage(storageID)
	if err != nil {
		return 0, err
	}
	return plan.Price + storage.Price, nil
}

// Plans returns the plan catalog.
func Plans() map[string]model.Plan {
	return plans
}

// StorageOptions returns the storage tier catalog.
func StorageOptions() map[string]model.StorageOption {
	return storageOptions
}

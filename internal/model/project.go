package model

import "time"

// Project is one provisioned cloud space. Rows are append-only: the service
// inserts and reads them, nothing updates or deletes them.
//
// swagger:model
type Project struct {

	// The project record identifier
	//
	// readOnly: true
	ID int64 `gorm:"primaryKey" json:"id"`

	// The generated tenant username, which doubles as the project name
	Name string `gorm:"not null" json:"name"`

	// The generated tenant password. Stored in the clear to match the
	// behavior of the system this one replaces; see DESIGN.md.
	Password string `gorm:"not null" json:"password"`

	// An optional caller-supplied description
	Description string `json:"description,omitempty"`

	// A human-readable summary of the resolved configuration
	Configuration string `gorm:"not null" json:"configuration"`

	// The resolved resource limits
	VCPUsLimit        int   `gorm:"not null" json:"vcpus_limit"`
	MemoryLimitGB     int   `gorm:"not null" json:"memory_limit_gb"`
	StorageLimitBytes int64 `gorm:"not null" json:"storage_limit_bytes"`

	// The computed monthly price
	Price int `gorm:"not null" json:"price"`

	// The URL the tenant uses to reach the platform console
	ProjectURL string `gorm:"column:project_url" json:"project_url"`

	// The terminal pipeline status for the request
	Status string `gorm:"not null" json:"status"`

	// The record creation timestamp
	//
	// readOnly: true
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

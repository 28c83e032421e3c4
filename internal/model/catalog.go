package model

// Plan describes a fixed compute sizing tier.
//
// swagger:model
type Plan struct {

	// The number of virtual CPUs granted to the project
	VCPUs int `json:"vcpus"`

	// The amount of memory granted to the project in gigabytes
	MemoryGB int `json:"memory_gb"`

	// The monthly base price
	Price int `json:"price"`
}

// StorageOption describes a fixed storage sizing tier, keyed by its capacity in bytes.
//
// swagger:model
type StorageOption struct {

	// The human readable capacity label, for example "1 TB"
	Display string `json:"display"`

	// The incremental monthly price
	Price int `json:"price"`
}

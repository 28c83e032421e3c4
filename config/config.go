package config

import (
	"errors"

	"github.com/cyverse-de/go-mod/cfg"
)

var ServiceName = "CSP"

// Specification defines the configuration settings for the cloud space provisioner.
type Specification struct {
	DatabaseURI string
	ReinitDB    bool
	ListenPort  int

	// Target platform connection settings.
	NutanixHost     string
	NutanixUser     string
	NutanixPassword string

	// Static provisioning references handed to the playbook.
	SubnetName           string
	SubnetCluster        string
	AccountName          string
	DirectoryServiceUUID string

	// Tenant identity settings.
	UserDomain string
	UserOUPath string

	// External automation tool settings.
	PlaybookCommand   string
	PlaybookPath      string
	PlaybookInventory string
	PlaybookTimeout   int

	// Access control policy settings.
	PolicyRoleUUID           string
	PolicyInsecureSkipVerify bool

	// Optional NATS cluster for project creation events.
	NatsCluster string
}

// LoadConfig loads the configuration for the cloud space provisioner.
func LoadConfig(envPrefix, configPath, dotEnvPath string) (*Specification, error) {
	k, err := cfg.Init(&cfg.Settings{
		EnvPrefix:   envPrefix,
		ConfigPath:  configPath,
		DotEnvPath:  dotEnvPath,
		StrictMerge: false,
		FileType:    cfg.YAML,
	})
	if err != nil {
		return nil, err
	}

	var s Specification

	s.DatabaseURI = k.String("database.uri")
	if s.DatabaseURI == "" {
		return nil, errors.New("database.uri or CSP_DATABASE_URI must be set")
	}

	s.ReinitDB = k.Bool("reinit.db")

	s.ListenPort = k.Int("listen.port")
	if s.ListenPort == 0 {
		s.ListenPort = 3000
	}

	s.NutanixHost = k.String("nutanix.host")
	if s.NutanixHost == "" {
		return nil, errors.New("nutanix.host must be set in the configuration file")
	}

	s.NutanixUser = k.String("nutanix.user")
	if s.NutanixUser == "" {
		return nil, errors.New("nutanix.user must be set in the configuration file")
	}

	s.NutanixPassword = k.String("nutanix.password")
	if s.NutanixPassword == "" {
		return nil, errors.New("nutanix.password must be set in the configuration file")
	}

	s.SubnetName = stringOrDefault(k.String("subnet.name"), "NTNX-IPAM")
	s.SubnetCluster = k.String("subnet.cluster")
	s.AccountName = stringOrDefault(k.String("account.name"), "NTNX_LOCAL_AZ")

	s.DirectoryServiceUUID = k.String("directory.uuid")
	if s.DirectoryServiceUUID == "" {
		return nil, errors.New("directory.uuid must be set in the configuration file")
	}

	s.UserDomain = stringOrDefault(k.String("directory.domain"), "ntnx.local")
	s.UserOUPath = stringOrDefault(k.String("directory.ou-path"), "CN=CloudSpace1,DC=ntnx,DC=local")

	s.PlaybookCommand = stringOrDefault(k.String("playbook.command"), "ansible-playbook")
	s.PlaybookPath = stringOrDefault(k.String("playbook.path"), "project_create.yaml")
	s.PlaybookInventory = k.String("playbook.inventory")
	s.PlaybookTimeout = k.Int("playbook.timeout")

	s.PolicyRoleUUID = k.String("policy.role-uuid")
	if k.Exists("policy.insecure-skip-verify") {
		s.PolicyInsecureSkipVerify = k.Bool("policy.insecure-skip-verify")
	} else {
		// The Prism endpoint is private and usually carries a self-signed
		// certificate, so verification is off unless the deployment opts in.
		s.PolicyInsecureSkipVerify = true
	}

	s.NatsCluster = k.String("nats.cluster")

	return &s, nil
}

func stringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

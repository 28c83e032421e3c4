// Package provision drives the external automation tool that actually creates
// the tenant project on the platform.
package provision

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/cloudspace/csp/config"
	"github.com/cloudspace/csp/internal/identity"
	"github.com/cloudspace/csp/internal/model"
	"github.com/cloudspace/csp/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "provision"})

// memoryBytesPerGB is the conversion factor the platform expects for memory
// limits. The playbook takes bytes, the catalog speaks gigabytes.
const memoryBytesPerGB = 1000000000

// Result is the outcome of a successful playbook run.
type Result struct {
	// The combined standard output of the playbook
	Output string

	// The console URL for the new project, parsed from the output when a
	// recognizable URL is present, otherwise a fixed fallback
	ProjectURL string

	// The platform UUIDs of the new project and directory user, parsed
	// best-effort from the output; either may be empty
	ProjectUUID string
	UserUUID    string

	// A human-readable summary of the resolved configuration
	Configuration string
}

// FailedError indicates that the playbook exited non-zero (or couldn't be
// started at all). It carries whatever output was captured before the
// process died.
type FailedError struct {
	ExitCode int
	Output   string
	Stderr   string
	Cause    error
}

func (e *FailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provisioning failed: %s", e.Cause.Error())
	}
	return fmt.Sprintf("provisioning failed: playbook exited with status %d", e.ExitCode)
}

func (e *FailedError) Unwrap() error {
	return e.Cause
}

// playbookVars is the extra-vars document handed to the playbook.
type playbookVars struct {
	NutanixHost          string               `yaml:"nutanix_host"`
	NutanixUsername      string               `yaml:"nutanix_username"`
	NutanixPassword      string               `yaml:"nutanix_password"`
	ProjectName          string               `yaml:"project_name"`
	ProjectDescription   string               `yaml:"project_description"`
	VCPUsLimit           int                  `yaml:"vcpus_limit"`
	MemoryLimit          int64                `yaml:"memory_limit"`
	StorageLimit         int64                `yaml:"storage_limit"`
	SubnetName           string               `yaml:"subnet_name"`
	SubnetCluster        string               `yaml:"subnet_cluster,omitempty"`
	AccountName          string               `yaml:"account_name"`
	DirectoryServiceUUID string               `yaml:"directory_service_uuid"`
	User                 *identity.Credential `yaml:"user"`
}

// Invoker launches the automation playbook for new tenant projects.
type Invoker struct {
	spec *config.Specification

	// TempDir overrides the directory used for the extra-vars file. Empty
	// means the system default.
	TempDir string
}

// NewInvoker returns a playbook invoker for the given configuration.
func NewInvoker(spec *config.Specification) *Invoker {
	return &Invoker{spec: spec}
}

// Provision creates a tenant project by running the configured playbook. The
// storage tier identifier is its capacity in bytes.
func (i *Invoker) Provision(
	ctx context.Context,
	plan model.Plan,
	storageID string,
	storage model.StorageOption,
	cred *identity.Credential,
	description string,
) (*Result, error) {
	log := log.WithFields(logrus.Fields{"context": "provisioning", "project": cred.Name})

	storageBytes, err := strconv.ParseInt(storageID, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid storage tier identifier '%s'", storageID)
	}

	vars := playbookVars{
		NutanixHost:          i.spec.NutanixHost,
		NutanixUsername:      i.spec.NutanixUser,
		NutanixPassword:      i.spec.NutanixPassword,
		ProjectName:          cred.Name,
		ProjectDescription:   description,
		VCPUsLimit:           plan.VCPUs,
		MemoryLimit:          int64(plan.MemoryGB) * memoryBytesPerGB,
		StorageLimit:         storageBytes,
		SubnetName:           i.spec.SubnetName,
		SubnetCluster:        i.spec.SubnetCluster,
		AccountName:          i.spec.AccountName,
		DirectoryServiceUUID: i.spec.DirectoryServiceUUID,
		User:                 cred,
	}

	varsFile, err := i.writeVarsFile(&vars)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(varsFile); err != nil {
			log.Errorf("unable to clean up the extra-vars file: %s", err.Error())
		}
	}()

	if i.spec.PlaybookTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(i.spec.PlaybookTimeout)*time.Second)
		defer cancel()
	}

	args := []string{i.spec.PlaybookPath}
	if i.spec.PlaybookInventory != "" {
		args = append(args, "-i", i.spec.PlaybookInventory)
	}
	args = append(args, "--extra-vars", "@"+varsFile)

	log.Infof("running %s %s", i.spec.PlaybookCommand, i.spec.PlaybookPath)

	// Output is captured incrementally and mirrored to the service log so
	// partial output survives a playbook crash.
	var stdout, stderr bytes.Buffer

	stdoutLog := log.WriterLevel(logrus.InfoLevel)
	defer stdoutLog.Close()
	stderrLog := log.WriterLevel(logrus.ErrorLevel)
	defer stderrLog.Close()

	cmd := exec.CommandContext(ctx, i.spec.PlaybookCommand, args...)
	cmd.Stdout = io.MultiWriter(&stdout, stdoutLog)
	cmd.Stderr = io.MultiWriter(&stderr, stderrLog)

	if err := cmd.Run(); err != nil {
		failure := &FailedError{
			ExitCode: -1,
			Output:   stdout.String(),
			Stderr:   stderr.String(),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			failure.ExitCode = exitErr.ExitCode()
		} else {
			failure.Cause = err
		}
		return nil, failure
	}

	log.Info("playbook completed successfully")

	output := stdout.String()
	return &Result{
		Output:        output,
		ProjectURL:    parseProjectURL(output, i.spec.NutanixHost),
		ProjectUUID:   parseUUID(output, "project_uuid"),
		UserUUID:      parseUUID(output, "user_uuid"),
		Configuration: ConfigurationSummary(plan, storage),
	}, nil
}

// writeVarsFile writes the extra-vars document to a temporary file and
// returns its path. The caller is responsible for removing the file.
func (i *Invoker) writeVarsFile(vars *playbookVars) (string, error) {
	wrapMsg := "unable to write the extra-vars file"

	body, err := yaml.Marshal(vars)
	if err != nil {
		return "", errors.Wrap(err, wrapMsg)
	}

	f, err := os.CreateTemp(i.TempDir, "project_vars_*.yaml")
	if err != nil {
		return "", errors.Wrap(err, wrapMsg)
	}

	if _, err := f.Write(body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", errors.Wrap(err, wrapMsg)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, wrapMsg)
	}

	return f.Name(), nil
}

// ConfigurationSummary formats the resolved resource limits for display and
// persistence.
func ConfigurationSummary(plan model.Plan, storage model.StorageOption) string {
	return fmt.Sprintf("%d vCPUs, %d GB RAM, %s storage", plan.VCPUs, plan.MemoryGB, storage.Display)
}

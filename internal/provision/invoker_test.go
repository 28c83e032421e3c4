package provision

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudspace/csp/config"
	"github.com/cloudspace/csp/internal/identity"
	"github.com/cloudspace/csp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPlan = model.Plan{VCPUs: 20, MemoryGB: 40, Price: 900}
var testStorage = model.StorageOption{Display: "1 TB", Price: 100}

func testCredential() *identity.Credential {
	return &identity.Credential{
		Name:      "swift_phoenix",
		GivenName: "Swift",
		Surname:   "Phoenix",
		Password:  "aB3defgh",
		UPN:       "swift_phoenix@ntnx.local",
		OUPath:    "CN=CloudSpace1,DC=ntnx,DC=local",
	}
}

// writeStub writes a shell script that stands in for ansible-playbook. The
// script receives the same arguments the real tool would, so "$3" is the
// @-prefixed extra-vars file path.
func writeStub(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stub.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func testInvoker(t *testing.T, stub string) *Invoker {
	t.Helper()
	inv := NewInvoker(&config.Specification{
		NutanixHost:          "prism.example.org",
		NutanixUser:          "admin",
		NutanixPassword:      "secret",
		SubnetName:           "NTNX-IPAM",
		AccountName:          "NTNX_LOCAL_AZ",
		DirectoryServiceUUID: "d5b518aa-13c2-4031-8e75-60bd73ba6e4b",
		PlaybookCommand:      stub,
		PlaybookPath:         "project_create.yaml",
	})
	inv.TempDir = t.TempDir()
	return inv
}

func TestProvisionSuccess(t *testing.T) {
	stub := writeStub(t, `cat "${3#@}"
echo "project_uuid=3e8f1d0a-91f4-4b41-96f4-1f1d2a9be0aa"
echo "user_uuid=7cb7c6be-6732-4e4e-bd4f-8a1f7fd8e2a1"`)
	inv := testInvoker(t, stub)

	result, err := inv.Provision(context.Background(), testPlan, "1000000000000", testStorage, testCredential(), "a test space")
	require.NoError(t, err)

	// The stub echoes the extra-vars file, so the output doubles as a check
	// that the parameter bundle was complete and correctly typed.
	assert.Contains(t, result.Output, "project_name: swift_phoenix")
	assert.Contains(t, result.Output, "project_description: a test space")
	assert.Contains(t, result.Output, "vcpus_limit: 20")
	assert.Contains(t, result.Output, "memory_limit: 40000000000")
	assert.Contains(t, result.Output, "storage_limit: 1000000000000")
	assert.Contains(t, result.Output, "nutanix_host: prism.example.org")
	assert.Contains(t, result.Output, "upn: swift_phoenix@ntnx.local")

	assert.Equal(t, "3e8f1d0a-91f4-4b41-96f4-1f1d2a9be0aa", result.ProjectUUID)
	assert.Equal(t, "7cb7c6be-6732-4e4e-bd4f-8a1f7fd8e2a1", result.UserUUID)
	assert.Equal(t, "20 vCPUs, 40 GB RAM, 1 TB storage", result.Configuration)
}

func TestProvisionParsesURLFromOutput(t *testing.T) {
	stub := writeStub(t, `echo "ok: project created at https://prism.example.org:9440/console/#page/explore/projects/42"`)
	inv := testInvoker(t, stub)

	result, err := inv.Provision(context.Background(), testPlan, "1000000000000", testStorage, testCredential(), "")
	require.NoError(t, err)
	assert.Equal(t, "https://prism.example.org:9440/console/#page/explore/projects/42", result.ProjectURL)
}

func TestProvisionFallbackURL(t *testing.T) {
	stub := writeStub(t, `echo "PLAY RECAP: ok=12 changed=4 failed=0"`)
	inv := testInvoker(t, stub)

	result, err := inv.Provision(context.Background(), testPlan, "1000000000000", testStorage, testCredential(), "")
	require.NoError(t, err)
	assert.Equal(t, "https://prism.example.org:9440/console/#page/projects", result.ProjectURL)
	assert.Empty(t, result.ProjectUUID)
	assert.Empty(t, result.UserUUID)
}

func TestProvisionFailure(t *testing.T) {
	stub := writeStub(t, `echo "TASK [create project]"
echo "fatal: [localhost]: FAILED! => quota exceeded" >&2
exit 2`)
	inv := testInvoker(t, stub)

	_, err := inv.Provision(context.Background(), testPlan, "1000000000000", testStorage, testCredential(), "")
	require.Error(t, err)

	var failure *FailedError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 2, failure.ExitCode)
	assert.Contains(t, failure.Stderr, "quota exceeded")
	assert.Contains(t, failure.Output, "TASK [create project]")
}

func TestProvisionCleansUpVarsFile(t *testing.T) {
	stub := writeStub(t, `exit 0`)
	inv := testInvoker(t, stub)

	_, err := inv.Provision(context.Background(), testPlan, "1000000000000", testStorage, testCredential(), "")
	require.NoError(t, err)

	entries, err := os.ReadDir(inv.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "extra-vars file should have been removed")
}

func TestProvisionCleansUpVarsFileOnFailure(t *testing.T) {
	stub := writeStub(t, `exit 1`)
	inv := testInvoker(t, stub)

	_, err := inv.Provision(context.Background(), testPlan, "1000000000000", testStorage, testCredential(), "")
	require.Error(t, err)

	entries, err := os.ReadDir(inv.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "extra-vars file should have been removed")
}

func TestProvisionRejectsMalformedStorageID(t *testing.T) {
	stub := writeStub(t, `exit 0`)
	inv := testInvoker(t, stub)

	_, err := inv.Provision(context.Background(), testPlan, "one terabyte", testStorage, testCredential(), "")
	assert.Error(t, err)
}

func TestParseUUID(t *testing.T) {
	output := "foo\nproject_uuid: 3e8f1d0a-91f4-4b41-96f4-1f1d2a9be0aa\nbar"
	assert.Equal(t, "3e8f1d0a-91f4-4b41-96f4-1f1d2a9be0aa", parseUUID(output, "project_uuid"))
	assert.Equal(t, "", parseUUID(output, "user_uuid"))
	assert.Equal(t, "", parseUUID("project_uuid=not-a-uuid", "project_uuid"))
}

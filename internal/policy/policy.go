// Package policy builds and submits the Prism v3 access control policy that
// grants a newly created tenant access to its own project resources.
package policy

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudspace/csp/config"
	"github.com/cloudspace/csp/logging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "policy"})

// IssuanceFailedError indicates that the policy API rejected the request or
// couldn't be reached. The orchestrator treats this as non-fatal.
type IssuanceFailedError struct {
	Cause error
}

func (e *IssuanceFailedError) Error() string {
	return fmt.Sprintf("access policy issuance failed: %s", e.Cause.Error())
}

func (e *IssuanceFailedError) Unwrap() error {
	return e.Cause
}

// Issuer submits access control policies to the platform's management API.
type Issuer struct {
	spec   *config.Specification
	client *http.Client

	// BaseURL overrides the management API endpoint. Empty means the
	// conventional https://<host>:9440 address.
	BaseURL string
}

// NewIssuer returns a policy issuer for the given configuration. Certificate
// verification follows the policy.insecure-skip-verify setting: the endpoint
// is normally a private Prism instance with a self-signed certificate.
func NewIssuer(spec *config.Specification) *Issuer {
	return &Issuer{
		spec: spec,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: spec.PolicyInsecureSkipVerify, // #nosec G402
				},
			},
		},
	}
}

// Issue creates an access control policy binding the configured role to the
// tenant user, scoped to the tenant's project plus the fixed platform-wide
// collections. It returns the UUID of the new policy.
func (i *Issuer) Issue(ctx context.Context, projectUUID, userUUID string) (string, error) {
	log := log.WithFields(logrus.Fields{"context": "policy issuance", "project": projectUUID})

	if _, err := uuid.Parse(projectUUID); err != nil {
		return "", &IssuanceFailedError{Cause: errors.Wrap(err, "invalid project UUID")}
	}
	if _, err := uuid.Parse(userUUID); err != nil {
		return "", &IssuanceFailedError{Cause: errors.Wrap(err, "invalid user UUID")}
	}

	payload := i.buildPolicy(projectUUID, userUUID)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &IssuanceFailedError{Cause: err}
	}

	endpoint := fmt.Sprintf("%s/api/nutanix/v3/access_control_policies", i.baseURL())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &IssuanceFailedError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(i.spec.NutanixUser, i.spec.NutanixPassword)

	resp, err := i.client.Do(req)
	if err != nil {
		return "", &IssuanceFailedError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &IssuanceFailedError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &IssuanceFailedError{
			Cause: fmt.Errorf("policy API returned status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var parsed acpResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &IssuanceFailedError{Cause: errors.Wrap(err, "unable to parse the policy API response")}
	}

	log.Infof("issued access control policy %s", parsed.Metadata.UUID)

	return parsed.Metadata.UUID, nil
}

func (i *Issuer) baseURL() string {
	if i.BaseURL != "" {
		return i.BaseURL
	}
	return fmt.Sprintf("https://%s:9440", i.spec.NutanixHost)
}

// platformCollections are the resource categories every tenant can see across
// the whole platform, regardless of project scope.
var platformCollections = []string{
	"image",
	"category",
	"cluster",
	"marketplace_item",
	"availability_zone",
	"vpc",
}

// buildPolicy assembles the declarative policy document: the tenant's own
// project, subnets, and VMs by UUID scope, the fixed platform-wide
// collections unconditionally, and a catch-all for entities the user owns.
func (i *Issuer) buildPolicy(projectUUID, userUUID string) *acpRequest {
	contexts := []filterContext{
		// Everything inside the tenant's project: its subnets, VMs, and the
		// project entity itself.
		{
			ScopeFilterExpressionList: []scopeExpression{
				{
					Operator:      "IN",
					LeftHandSide:  scopeSide{ScopeType: "PROJECT"},
					RightHandSide: expressionSide{UUIDList: []string{projectUUID}},
				},
			},
			EntityFilterExpressionList: []entityExpression{
				entityCollection("ALL", "ALL"),
			},
		},
		// The project entity by UUID so the console can render it.
		{
			EntityFilterExpressionList: []entityExpression{
				{
					Operator:      "IN",
					LeftHandSide:  entitySide{EntityType: "project"},
					RightHandSide: expressionSide{UUIDList: []string{projectUUID}},
				},
			},
		},
	}

	for _, collection := range platformCollections {
		contexts = append(contexts, filterContext{
			EntityFilterExpressionList: []entityExpression{
				entityCollection(collection, "ALL"),
			},
		})
	}

	contexts = append(contexts, filterContext{
		EntityFilterExpressionList: []entityExpression{
			entityCollection("ALL", "SELF_OWNED"),
		},
	})

	return &acpRequest{
		APIVersion: "3.1.0",
		Metadata:   acpMetadata{Kind: "access_control_policy"},
		Spec: acpSpec{
			Name:        fmt.Sprintf("cloudspace-%s", projectUUID),
			Description: "Tenant access policy issued by the cloud space provisioner",
			Resources: acpResources{
				RoleReference:     reference{Kind: "role", UUID: i.spec.PolicyRoleUUID},
				UserReferenceList: []reference{{Kind: "user", UUID: userUUID}},
				FilterList:        filterList{ContextList: contexts},
			},
		},
	}
}

func entityCollection(entityType, collection string) entityExpression {
	return entityExpression{
		Operator:      "IN",
		LeftHandSide:  entitySide{EntityType: entityType},
		RightHandSide: expressionSide{Collection: collection},
	}
}

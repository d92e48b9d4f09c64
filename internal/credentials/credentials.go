// Package credentials loads the service principal used to call the
// management API directly.
//
// The file is the one written by `az ad sp create-for-rbac --sdk-auth`:
// a JSON object with at least subscriptionId, tenantId, clientId and
// clientSecret. Extra fields are ignored.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformed is returned when the credential file is not a valid service principal.
var ErrMalformed = errors.New("malformed service principal credential")

const servicePrincipalSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["subscriptionId", "tenantId", "clientId", "clientSecret"],
  "properties": {
    "subscriptionId": {"type": "string", "minLength": 1},
    "tenantId":       {"type": "string", "minLength": 1},
    "clientId":       {"type": "string", "minLength": 1},
    "clientSecret":   {"type": "string", "minLength": 1}
  }
}`

var schema = mustCompile(servicePrincipalSchema)

func mustCompile(s string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid service principal schema: %v", err))
	}
	return compiled
}

// ServicePrincipal is an Azure AD application credential.
type ServicePrincipal struct {
	SubscriptionID string `json:"subscriptionId"`
	TenantID       string `json:"tenantId"`
	ClientID       string `json:"clientId"`
	ClientSecret   string `json:"clientSecret"`
}

// String hides the secret.
func (sp ServicePrincipal) String() string {
	return fmt.Sprintf("ServicePrincipal{client=%s tenant=%s subscription=%s}", sp.ClientID, sp.TenantID, sp.SubscriptionID)
}

// Load reads and validates a service principal file.
func Load(path string) (*ServicePrincipal, error) {
	// #nosec G304 - path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("service principal file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read service principal file %s: %w", path, err)
	}

	sp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sp, nil
}

// Parse validates data against the service principal schema and decodes it.
func Parse(data []byte) (*ServicePrincipal, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformed)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !result.Valid() {
		var errs *multierror.Error
		for _, e := range result.Errors() {
			errs = multierror.Append(errs, errors.New(e.String()))
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, errs.ErrorOrNil())
	}

	var sp ServicePrincipal
	if err := json.Unmarshal(data, &sp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &sp, nil
}

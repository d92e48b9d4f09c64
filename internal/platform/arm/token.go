// Package arm calls Azure Resource Manager REST endpoints that have no
// CLI or SDK equivalent in this tool.
package arm

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/mkrspc/iotporg/internal/credentials"
)

// TokenEndpoint returns the v1 token endpoint of tenant under authority.
func TokenEndpoint(authority, tenant string) string {
	return strings.TrimRight(authority, "/") + "/" + tenant + "/oauth2/token"
}

// ClientCredentials returns the client-credentials grant for sp against
// the v1 endpoint, requesting a token for resource.
func ClientCredentials(sp *credentials.ServicePrincipal, authority, resource string) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:     sp.ClientID,
		ClientSecret: sp.ClientSecret,
		TokenURL:     TokenEndpoint(authority, sp.TenantID),
		EndpointParams: map[string][]string{
			"resource": {resource},
		},
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// TokenSource returns a caching token source for sp. httpClient, when not
// nil, is used for the token request.
func TokenSource(ctx context.Context, sp *credentials.ServicePrincipal, authority, resource string, httpClient *http.Client) oauth2.TokenSource {
	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}
	return ClientCredentials(sp, authority, resource).TokenSource(ctx)
}

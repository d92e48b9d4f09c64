package arm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrspc/iotporg/internal/credentials"
)

var testSP = &credentials.ServicePrincipal{
	SubscriptionID: "sub-1",
	TenantID:       "tenant-1",
	ClientID:       "client-1",
	ClientSecret:   "secret-1",
}

// newManagementServer serves a v1 token endpoint and the listKeys action.
func newManagementServer(t *testing.T, keys map[string]string) (*httptest.Server, *int32) {
	t.Helper()
	var tokenRequests int32

	mux := http.NewServeMux()
	mux.HandleFunc("/tenant-1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenRequests, 1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret-1", r.PostForm.Get("client_secret"))
		assert.Equal(t, "https://management.azure.com", r.PostForm.Get("resource"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"access_token":"tok-123","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Web/sites/porg-app2/functions/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "2018-02-01", r.URL.Query().Get("api-version"))
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = fmt.Fprint(w, `{"error":{"code":"AuthenticationFailed","message":"bad token"}}`)
			return
		}

		var device string
		_, err := fmt.Sscanf(r.URL.Path, "/subscriptions/sub-1/resourceGroups/rg/providers/Microsoft.Web/sites/porg-app2/functions/%s", &device)
		require.NoError(t, err)
		device = device[:len(device)-len("/listKeys")]

		key, ok := keys[device]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprint(w, `{"error":{"code":"NotFound","message":"function not found"}}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"default":%q,"extra":"x"}`, key)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenRequests
}

func TestTokenEndpoint(t *testing.T) {
	assert.Equal(t, "https://login.microsoftonline.com/t/oauth2/token", TokenEndpoint("https://login.microsoftonline.com/", "t"))
}

func TestListFunctionKeys(t *testing.T) {
	srv, tokenRequests := newManagementServer(t, map[string]string{"d1": "k1", "d2": "k2"})
	ctx := context.Background()

	ts := TokenSource(ctx, testSP, srv.URL, "https://management.azure.com", srv.Client())
	client := NewClient(ctx, ts, srv.URL, "2018-02-01", 0)

	keys, err := client.ListFunctionKeys(ctx, FunctionRef{SubscriptionID: "sub-1", ResourceGroup: "rg", App: "porg-app2", Function: "d1"})
	require.NoError(t, err)
	assert.Equal(t, "k1", keys.Default)
	assert.Equal(t, map[string]string{"default": "k1", "extra": "x"}, keys.All)

	keys, err = client.ListFunctionKeys(ctx, FunctionRef{SubscriptionID: "sub-1", ResourceGroup: "rg", App: "porg-app2", Function: "d2"})
	require.NoError(t, err)
	assert.Equal(t, "k2", keys.Default)

	// The token is cached across calls.
	assert.Equal(t, int32(1), atomic.LoadInt32(tokenRequests))
}

func TestListFunctionKeys_APIError(t *testing.T) {
	srv, _ := newManagementServer(t, map[string]string{})
	ctx := context.Background()

	ts := TokenSource(ctx, testSP, srv.URL, "https://management.azure.com", srv.Client())
	client := NewClient(ctx, ts, srv.URL, "2018-02-01", 0)

	_, err := client.ListFunctionKeys(ctx, FunctionRef{SubscriptionID: "sub-1", ResourceGroup: "rg", App: "porg-app2", Function: "missing"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NotFound", apiErr.Code)
}

func TestListFunctionKeys_NoDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"other":"x"}`)
	}))
	defer srv.Close()

	client := newClient(srv.Client(), srv.URL, "2018-02-01")
	_, err := client.ListFunctionKeys(context.Background(), FunctionRef{SubscriptionID: "s", ResourceGroup: "rg", App: "a", Function: "f"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no default key")
}

func TestListFunctionKeys_TokenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `{"error":"invalid_client"}`)
	}))
	defer srv.Close()
	ctx := context.Background()

	ts := TokenSource(ctx, testSP, srv.URL, "https://management.azure.com", srv.Client())
	_, err := NewClient(ctx, ts, srv.URL, "2018-02-01", 0).ListFunctionKeys(ctx, FunctionRef{SubscriptionID: "s", ResourceGroup: "rg", App: "a", Function: "f"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_client")
}

// Package azure talks to Azure Resource Manager through the Go SDK.
package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceGroup is the result of an ensure call.
type ResourceGroup struct {
	ID       string
	Name     string
	Location string
	// Created is false when the group already existed.
	Created bool
}

// ResourceGroupManager creates resource groups.
type ResourceGroupManager interface {
	EnsureResourceGroup(ctx context.Context, name, location string) (*ResourceGroup, error)
}

// groupsAPI is the part of armresources.ResourceGroupsClient used here.
type groupsAPI interface {
	Get(ctx context.Context, name string, options *armresources.ResourceGroupsClientGetOptions) (armresources.ResourceGroupsClientGetResponse, error)
	CreateOrUpdate(ctx context.Context, name string, parameters armresources.ResourceGroup, options *armresources.ResourceGroupsClientCreateOrUpdateOptions) (armresources.ResourceGroupsClientCreateOrUpdateResponse, error)
}

// ResourceGroups implements ResourceGroupManager with the ARM SDK.
type ResourceGroups struct {
	client groupsAPI
}

// NewResourceGroups authenticates with the Azure CLI login and returns a
// manager scoped to subscriptionID.
func NewResourceGroups(subscriptionID string) (*ResourceGroups, error) {
	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load Azure CLI credential: %w", err)
	}
	return NewResourceGroupsWithCredential(subscriptionID, cred)
}

// NewResourceGroupsWithCredential returns a manager using an explicit credential.
func NewResourceGroupsWithCredential(subscriptionID string, cred azcore.TokenCredential) (*ResourceGroups, error) {
	client, err := armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	return &ResourceGroups{client: client}, nil
}

// EnsureResourceGroup creates the group when it is missing and updates it
// otherwise. The location of an existing group is left to ARM to reconcile.
func (r *ResourceGroups) EnsureResourceGroup(ctx context.Context, name, location string) (*ResourceGroup, error) {
	created := false
	if _, err := r.client.Get(ctx, name, nil); err != nil {
		if !IsNotFound(err) {
			return nil, fmt.Errorf("failed to get resource group %s: %w", name, err)
		}
		created = true
	}

	resp, err := r.client.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create or update resource group %s: %w", name, err)
	}

	rg := &ResourceGroup{Name: name, Location: location, Created: created}
	if resp.ID != nil {
		rg.ID = *resp.ID
	}
	if resp.Name != nil {
		rg.Name = *resp.Name
	}
	if resp.Location != nil {
		rg.Location = *resp.Location
	}
	return rg, nil
}

// IsNotFound reports whether err is an ARM 404.
func IsNotFound(err error) bool {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}
	return false
}

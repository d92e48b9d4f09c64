package azure

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroups struct {
	getErr    error
	createErr error
	created   []armresources.ResourceGroup
}

func (f *fakeGroups) Get(_ context.Context, name string, _ *armresources.ResourceGroupsClientGetOptions) (armresources.ResourceGroupsClientGetResponse, error) {
	if f.getErr != nil {
		return armresources.ResourceGroupsClientGetResponse{}, f.getErr
	}
	return armresources.ResourceGroupsClientGetResponse{
		ResourceGroup: armresources.ResourceGroup{Name: to.Ptr(name)},
	}, nil
}

func (f *fakeGroups) CreateOrUpdate(_ context.Context, name string, params armresources.ResourceGroup, _ *armresources.ResourceGroupsClientCreateOrUpdateOptions) (armresources.ResourceGroupsClientCreateOrUpdateResponse, error) {
	if f.createErr != nil {
		return armresources.ResourceGroupsClientCreateOrUpdateResponse{}, f.createErr
	}
	f.created = append(f.created, params)
	return armresources.ResourceGroupsClientCreateOrUpdateResponse{
		ResourceGroup: armresources.ResourceGroup{
			ID:       to.Ptr("/subscriptions/sub/resourceGroups/" + name),
			Name:     to.Ptr(name),
			Location: to.Ptr("westus"),
		},
	}, nil
}

func notFound() error {
	return &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "ResourceGroupNotFound"}
}

func TestEnsureResourceGroup_Creates(t *testing.T) {
	fake := &fakeGroups{getErr: notFound()}
	rgs := &ResourceGroups{client: fake}

	rg, err := rgs.EnsureResourceGroup(context.Background(), "MKRSPC-iot-porg", "West US")
	require.NoError(t, err)

	assert.True(t, rg.Created)
	assert.Equal(t, "MKRSPC-iot-porg", rg.Name)
	assert.Equal(t, "westus", rg.Location)
	assert.Equal(t, "/subscriptions/sub/resourceGroups/MKRSPC-iot-porg", rg.ID)
	require.Len(t, fake.created, 1)
	assert.Equal(t, "West US", *fake.created[0].Location)
}

func TestEnsureResourceGroup_UpdatesExisting(t *testing.T) {
	fake := &fakeGroups{}
	rgs := &ResourceGroups{client: fake}

	rg, err := rgs.EnsureResourceGroup(context.Background(), "rg", "West US")
	require.NoError(t, err)
	assert.False(t, rg.Created)
	assert.Len(t, fake.created, 1)
}

func TestEnsureResourceGroup_Errors(t *testing.T) {
	t.Run("get fails", func(t *testing.T) {
		fake := &fakeGroups{getErr: &azcore.ResponseError{StatusCode: http.StatusForbidden}}
		_, err := (&ResourceGroups{client: fake}).EnsureResourceGroup(context.Background(), "rg", "westus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get resource group rg")
		assert.Empty(t, fake.created)
	})

	t.Run("create fails", func(t *testing.T) {
		fake := &fakeGroups{getErr: notFound(), createErr: errors.New("quota exceeded")}
		_, err := (&ResourceGroups{client: fake}).EnsureResourceGroup(context.Background(), "rg", "westus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(notFound()))
	assert.False(t, IsNotFound(&azcore.ResponseError{StatusCode: http.StatusConflict}))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

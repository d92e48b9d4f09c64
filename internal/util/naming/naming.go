package naming

import (
	"fmt"
	"net/url"
)

// MaxSuffix is the upper bound (inclusive) of the random suffix used for
// globally unique names.
const MaxSuffix = 100000

// Naming functions for provisioned resources.

func Hub(resourceGroup string, suffix int) string {
	return fmt.Sprintf("%s-%05d", resourceGroup, suffix)
}

// StorageAccount must stay alphanumeric and at most 24 characters.
func StorageAccount(suffix int) string {
	return fmt.Sprintf("storage%05d", suffix)
}

func FunctionApp(resourceGroup string, suffix int) string {
	return fmt.Sprintf("%s-app-%05d", resourceGroup, suffix)
}

func Device(prefix string, index int) string {
	return fmt.Sprintf("%s-%d", prefix, index)
}

// FunctionKeysPath returns the management-plane path of the listKeys
// action for a single function inside a function app.
func FunctionKeysPath(subscriptionID, resourceGroup, app, function string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Web/sites/%s/functions/%s/listKeys",
		url.PathEscape(subscriptionID),
		url.PathEscape(resourceGroup),
		url.PathEscape(app),
		url.PathEscape(function),
	)
}

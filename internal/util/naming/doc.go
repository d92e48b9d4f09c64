// Package naming provides consistent naming functions for Azure resources.
//
// Globally unique resources (IoT hubs, storage accounts) carry a random
// five-digit suffix in the form {base}-{NNNNN} or {base}{NNNNN}. Device
// identities synthesized without a name list follow {prefix}-{index}.
package naming

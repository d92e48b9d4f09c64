package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errResourceGroupRequired = errors.New("resource group name is required")
	errResourceGroupInvalid  = errors.New("resource group name must be 1-90 letters, digits, underscores, hyphens, periods or parentheses, not ending in a period")
	errDeviceCountInvalid    = errors.New("device count must be a whole number between 1 and 1000")
	errDevicePrefixInvalid   = errors.New("device prefix must be letters, digits or hyphens")
	errPathRequired          = errors.New("file path is required")
)

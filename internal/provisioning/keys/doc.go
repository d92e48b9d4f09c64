// Package keys reads the default key of every device function through the
// management API, authenticated as a service principal.
package keys

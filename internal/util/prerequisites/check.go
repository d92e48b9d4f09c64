// Package prerequisites provides utilities for checking required client tools.
// The provisioning pipeline shells out to the Azure CLI and, for function apps,
// to Azure Functions Core Tools; both must be on PATH before any stage runs.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// DefaultTools returns the tools every provisioning run needs.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "az",
			Required:    true,
			Description: "Required for IoT Hub, device identity, storage and function app operations",
			InstallURL:  "https://learn.microsoft.com/cli/azure/install-azure-cli",
		},
	}
}

// FunctionAppTools returns additional tools needed to scaffold and publish a function app.
func FunctionAppTools() []Tool {
	return []Tool{
		{
			Name:        "func",
			Required:    true,
			Description: "Required for scaffolding and publishing the serverless function app",
			InstallURL:  "https://learn.microsoft.com/azure/azure-functions/functions-run-local",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			result.Version = getToolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckProvisioning checks the tools needed for a provisioning run.
// Core Tools are only checked when the function app stage is enabled.
func CheckProvisioning(withFunctionApp bool) *CheckResults {
	tools := DefaultTools()
	if withFunctionApp {
		tools = append(tools, FunctionAppTools()...)
	}
	return Check(tools)
}

// getToolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func getToolVersion(name string) string {
	for _, flag := range []string{"--version", "version"} {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		output, err := exec.Command(name, flag).Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}

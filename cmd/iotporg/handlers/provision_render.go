package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkrspc/iotporg/internal/config"
	"github.com/mkrspc/iotporg/internal/provisioning"
)

var (
	summaryColorBlue  = lipgloss.Color("#3b82f6")
	summaryColorDim   = lipgloss.Color("#6b7280")
	summaryColorWhite = lipgloss.Color("#f9fafb")
	summaryColorGreen = lipgloss.Color("#22c55e")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorWhite)

	summarySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorBlue)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryGreenStyle = lipgloss.NewStyle().
				Foreground(summaryColorGreen)
)

// connectionStringPreview is how much of a connection string the summary shows.
const connectionStringPreview = 48

// renderProvisionSummary produces a lipgloss-styled summary of a completed run.
func renderProvisionSummary(cfg *config.Config, st *provisioning.State) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("  iotporg: provisioning complete"))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")

	renderSection(&b, "Resources")
	writeRow(&b, "Resource group", cfg.ResourceGroup.Name)
	if st.SubscriptionID != "" {
		writeRow(&b, "Subscription", st.SubscriptionID)
	}
	if st.HubName != "" {
		writeRow(&b, "IoT Hub", st.HubName)
	}
	if st.FunctionApp != "" {
		writeRow(&b, "Function app", st.FunctionApp)
		writeRow(&b, "Storage", st.StorageAccount)
	}

	if len(st.Devices) > 0 {
		renderSection(&b, fmt.Sprintf("Devices (%d)", len(st.Devices)))
		for _, d := range st.Devices {
			fmt.Fprintf(&b, "    %-20s %s\n", d.DeviceID, summaryDimStyle.Render(truncate(d.ConnectionString, connectionStringPreview)))
		}
		writeRow(&b, "Written to", cfg.Devices.OutputFile)
	}

	if len(st.FunctionKeys) > 0 {
		renderSection(&b, fmt.Sprintf("Function keys (%d)", len(st.FunctionKeys)))
		for _, k := range st.FunctionKeys {
			fmt.Fprintf(&b, "    %-20s %s\n", k.Device, summaryGreenStyle.Render(k.Key))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderSection(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(summarySectionStyle.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "    %-15s %s\n", label+":", value)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

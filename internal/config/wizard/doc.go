// Package wizard provides the interactive configuration wizard behind
// `iotporg init --interactive`.
//
// It uses charmbracelet/huh forms to ask which provisioning stages to
// enable. RunWizard collects the answers into a WizardResult and
// BuildConfig turns them into a config.Config ready to be saved.
package wizard

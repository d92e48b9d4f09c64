// Package prompt provides the yes/no confirmation primitive that gates
// destructive file overwrites and the overall patch run.
//
// Interactive terminals get a huh confirm field; piped input is read line
// by line so that scripted answers ("y", "n") keep working.
package prompt

// Package patcher rewrites vendor firmware files line by line.
//
// A [Target] names a file, a line prefix and an [Action]: either replace
// the whole line or prepend a comment marker. Before a target is rewritten
// it is copied to <path>.orig; an existing backup is only overwritten after
// confirmation, and declining aborts the run.
//
// The ESP8266 helpers locate every installed board package version under
// an Arduino data directory and patch Arduino.h and platform.txt so the
// cores compile against the Azure IoT Arduino SDK.
package patcher

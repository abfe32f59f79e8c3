// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Star selection with hit testing, YAML catalog loading, event log
// 0.2.0 - Sidereal time clock, filter ranges, catalog table with rise/set
// 0.1.0 - Initial release: dome projection TUI, headless summary and snapshot modes

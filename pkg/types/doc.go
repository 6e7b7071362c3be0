// Package types defines the core types and interfaces used throughout
// scopelink. This includes the FS filesystem capability interface, the
// Package manifest record, and the LinkArgument and LinkRecord data
// structures shared by the link, unlink, and status commands.
package types

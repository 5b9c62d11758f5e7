// Package version records the build identity shared by startup logs and
// API clients.
package version

// Version is the labelcheck release version.
const Version = "1.0.0"

// UserAgent identifies labelcheck to remote APIs.
const UserAgent = "labelcheck/" + Version

// Package getrandom provides the kernel backed entropy source.
package getrandom

import "gitlab.com/yawning/protint.git/internal/api"

// Source is the getrandom(2) backed entropy source, or nil if the
// platform does not support it.
var Source api.Source

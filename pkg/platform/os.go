// SPDX-License-Identifier: MPL-2.0

package platform

// Operating system identifiers as reported by runtime.GOOS. The resource
// file search and exec code compare against these in a few places, so the
// literals live here once.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
)

// SPDX-License-Identifier: MPL-2.0

// Command gantry resolves a wrapped tool's settings and launches it.
package main

import cmd "github.com/gantrylabs/gantry/cmd/gantry"

func main() {
	cmd.Execute()
}

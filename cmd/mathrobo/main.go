// SPDX-License-Identifier: MIT

// Command mathrobo resolves kinematic scenarios into rotations, rigid
// transforms and composite motion transformation matrices.
package main

import "os"

func main() {
	os.Exit(Execute())
}

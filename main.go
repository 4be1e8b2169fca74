/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command brandtokens compiles multi-brand design tokens to CSS variables.
package main

import (
	"os"

	"bennypowers.dev/brandtokens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

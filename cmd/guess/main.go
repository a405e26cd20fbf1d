// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/lovey89/guides/pkg/ux"
)

func main() {
	// Cobra handles parsing the arguments; the game owns stdin and stdout.
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		ux.Error(os.Stderr, err.Error())
		os.Exit(1)
	}
}

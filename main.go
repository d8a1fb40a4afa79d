// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/mtreilly/arc-shelf/internal/cmd"
)

func main() {
	root := cmd.NewRootCmd(&cmd.App{})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "arc-shelf: %v\n", err)
		os.Exit(1)
	}
}

//go:build mage
// +build mage

// Copyright 2024 The go-pwg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified.
var Default = Build

// Build compiles the hbt commands into ./bin.
func Build() error {
	mg.Deps(BuildRun)
	mg.Deps(BuildSQL)
	fmt.Println("Compilation finished")
	return nil
}

func BuildRun() error {
	fmt.Println("Building hbt-run executable...")
	return run("go", "build", "-o", "./bin/hbt-run", "./cmd/hbt-run")
}

func BuildSQL() error {
	fmt.Println("Building hbt-sql executable...")
	return run("go", "build", "-o", "./bin/hbt-sql", "./cmd/hbt-sql")
}

// Test runs the whole test suite.
func Test() error {
	return run("go", "test", "./...")
}

// Clean removes the build artifacts.
func Clean() error {
	return os.RemoveAll("./bin")
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

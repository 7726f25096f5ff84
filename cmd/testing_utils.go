// Package cmd contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments and
// capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	"github.com/nisaba-tools/tablet/internal/crypto"
	logger "github.com/nisaba-tools/tablet/internal/logging"
)

// setupTestEnvironment moves into a temp directory, resets command state,
// and exports a fresh archive key. Returns the encoded key.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	tempDir := t.TempDir()
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		ResetGlobalState()
	})

	ResetGlobalState()
	SetLogger(logger.Logger{})

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}
	encoded := crypto.EncodeKey(key)
	t.Setenv(crypto.DefaultKeyEnv, encoded)
	return encoded
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	copyPipe := func(r *os.File) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Printf("Failed to copy pipe output: %v", err)
		}
		outputChan <- buf.String()
	}
	go copyPipe(stdoutReader)
	go copyPipe(stderrReader)

	fnErr := fn()

	stdoutWriter.Close()
	stderrWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	output := <-outputChan
	output += <-outputChan
	return output, fnErr
}

// runCommand executes the root command with the given args and captures output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := GetRootCmd()
	root.SetArgs(args)
	return captureOutput(t, func() error {
		return root.Execute()
	})
}

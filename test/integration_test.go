// ABOUTME: Integration tests for the lift CLI.
// ABOUTME: Builds the binary and exercises a full logging workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	liftBinary := filepath.Join(projectRoot, "lift")

	buildCmd := exec.Command("go", "build", "-o", liftBinary, "./cmd/lift")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(liftBinary)

	for _, backend := range []string{"sqlite", "kv"} {
		t.Run(backend, func(t *testing.T) {
			dataDir := t.TempDir()

			run := func(args ...string) (string, error) {
				fullArgs := append([]string{"--data-dir", dataDir, "--backend", backend}, args...)
				cmd := exec.Command(liftBinary, fullArgs...)
				// Isolate from any real user config.
				cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir())
				output, err := cmd.CombinedOutput()
				return string(output), err
			}

			// Start a workout
			output, err := run("start", "Push day")
			if err != nil {
				t.Fatalf("Failed to start workout: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Started Push day") {
				t.Errorf("Expected 'Started Push day' in output, got: %s", output)
			}

			// Log a weighted set against today's workout
			output, err = run("set", "add", "Bench Press", "5", "100")
			if err != nil {
				t.Fatalf("Failed to add set: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Bench Press") {
				t.Errorf("Expected 'Bench Press' in output, got: %s", output)
			}

			// Log a bodyweight set
			output, err = run("set", "add", "Push Up", "20")
			if err != nil {
				t.Fatalf("Failed to add bodyweight set: %v\n%s", err, output)
			}
			if !strings.Contains(output, "20 reps") {
				t.Errorf("Expected '20 reps' in output, got: %s", output)
			}

			// Today shows the active session and both sets
			output, err = run("today")
			if err != nil {
				t.Fatalf("Failed to show today: %v\n%s", err, output)
			}
			if !strings.Contains(output, "active") || !strings.Contains(output, "Push Up") {
				t.Errorf("Expected active session with sets, got: %s", output)
			}

			// Stop the workout
			output, err = run("stop")
			if err != nil {
				t.Fatalf("Failed to stop workout: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Stopped Push day") {
				t.Errorf("Expected 'Stopped Push day' in output, got: %s", output)
			}

			// Stopping again is a no-op
			output, err = run("stop")
			if err != nil {
				t.Fatalf("Second stop errored: %v\n%s", err, output)
			}
			if !strings.Contains(output, "No active workout") {
				t.Errorf("Expected 'No active workout' in output, got: %s", output)
			}

			// Stats see the logged work
			output, err = run("stats", "max", "bench press")
			if err != nil {
				t.Fatalf("Failed to get stats: %v\n%s", err, output)
			}
			if !strings.Contains(output, "100.0 x 5") {
				t.Errorf("Expected daily max in output, got: %s", output)
			}

			output, err = run("stats", "recent")
			if err != nil {
				t.Fatalf("Failed to list recent: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Bench Press") || !strings.Contains(output, "Push Up") {
				t.Errorf("Expected both exercises in recent, got: %s", output)
			}

			// Export produces parseable output
			output, err = run("export")
			if err != nil {
				t.Fatalf("Failed to export: %v\n%s", err, output)
			}
			if !strings.Contains(output, "\"workouts\"") {
				t.Errorf("Expected JSON export, got: %s", output)
			}
		})
	}
}

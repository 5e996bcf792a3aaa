package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgebyte/bootforge/internal/initializr"
	"github.com/forgebyte/bootforge/internal/toolrunner"
	"github.com/forgebyte/bootforge/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose development environment",
	Long: `Perform diagnostics of your project scaffolding environment.

This command verifies:
  • Spring Boot CLI installation
  • Java runtime installation
  • Metadata service reachability
  • Working directory write permission

Example:
  bootforge doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor executes the doctor command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - System environment checks
func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	conf, err := loadConfig()
	if err != nil {
		return err
	}

	ui.Info("Bootforge Environment Diagnostics")
	separator := strings.Repeat("=", 60)
	ui.Info("%s", separator)
	ui.Info("")

	hasErrors := false
	hasWarnings := false

	// System information
	ui.Info("System Information")
	ui.Info("  OS/Arch:    %s/%s", runtime.GOOS, runtime.GOARCH)
	ui.Info("  Go Version: %s", runtime.Version())
	ui.Info("")

	// Generator toolchain
	ui.Info("Generator Toolchain")
	ui.Info("  Checking Spring Boot CLI...")
	if err := checkSpringInstallation(ctx, conf.Generator); err != nil {
		ui.Error("  [x] %s: %v", conf.Generator, err)
		hasErrors = true
	} else {
		ui.Success("  [+] %s", conf.Generator)
	}

	ui.Info("  Checking Java runtime...")
	if err := checkJavaInstallation(ctx); err != nil {
		ui.Warning("  [!] java: %v", err)
		hasWarnings = true
	} else {
		ui.Success("  [+] java")
	}
	ui.Info("")

	// Metadata service
	ui.Info("Metadata Service")
	ui.Info("  Checking %s...", conf.MetadataURL)
	if err := checkMetadataService(ctx, conf.MetadataURL); err != nil {
		ui.Warning("  [!] unreachable: %v", err)
		hasWarnings = true
	} else {
		ui.Success("  [+] reachable")
	}
	ui.Info("")

	// File system
	ui.Info("File System")
	if err := checkWorkingDirectoryWritable(); err != nil {
		ui.Error("  [x] %v", err)
		hasErrors = true
	} else {
		ui.Success("  [+] Working directory writable")
	}

	// Summary
	ui.Info("")
	ui.Info("%s", separator)
	if hasErrors {
		ui.Error("Diagnostics completed with ERRORS")
		ui.Info("Please resolve the errors above before creating projects.")
		return fmt.Errorf("environment check failed")
	} else if hasWarnings {
		ui.Warning("Diagnostics completed with WARNINGS")
		ui.Info("Your environment is functional but some features may be limited.")
	} else {
		ui.Success("All checks passed - environment ready")
	}

	return nil
}

// checkSpringInstallation checks the generator executable and version.
func checkSpringInstallation(ctx context.Context, executable string) error {
	if available, _ := toolrunner.CheckToolAvailability(executable); !available {
		return fmt.Errorf("not found in PATH")
	}

	version, err := toolrunner.GetSpringVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}

	ui.Debug("      Version: %s", version)
	return nil
}

// checkJavaInstallation checks the Java runtime.
func checkJavaInstallation(ctx context.Context) error {
	if available, _ := toolrunner.CheckToolAvailability("java"); !available {
		return fmt.Errorf("not found in PATH")
	}

	version, err := toolrunner.GetJavaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}

	ui.Debug("      Version: %s", version)
	return nil
}

// checkMetadataService fetches the metadata document with a short timeout.
func checkMetadataService(ctx context.Context, url string) error {
	client := initializr.NewClient(url, 5*time.Second)
	_, err := client.Fetch(ctx)
	return err
}

// checkWorkingDirectoryWritable verifies a file can be created in the
// current directory, where generated projects land.
func checkWorkingDirectoryWritable() error {
	f, err := os.CreateTemp(".", ".bootforge-doctor-*")
	if err != nil {
		return fmt.Errorf("working directory not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}

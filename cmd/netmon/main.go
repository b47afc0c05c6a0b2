package main

import (
	"fmt"
	"io"
	"os"

	"netmon/domain"
	"netmon/internal"
	"netmon/sysinfo"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK     = 0
	exitConfig = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netmon terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run drives the whole report against the given writer. Keeping it apart
// from main ensures defers execute before the process exits and lets tests
// capture the output without touching os.Stdout.
func run(stdout io.Writer) (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Startup banner
	// Color only on a real stdout; piped or captured output keeps plain text.
	banner := "=== Network Monitor ==="
	if stdout == os.Stdout {
		banner = color.New(color.BgBlack, color.FgGreen).Render(banner)
	}
	fmt.Fprintln(stdout, banner)

	// 3. System report
	logger.Debug("Collecting system information")
	sysinfo.Render(stdout, sysinfo.Collect(logger))

	// 4. Monitored endpoint
	conn := domain.NewTCPConnection(config.Address, config.Port)
	conn.Describe(stdout)
	logger.Debug("Endpoint described", "address", conn.Address(), "port", conn.Port())

	fmt.Fprintln(stdout, "Program completed successfully!")
	return exitOK, nil
}

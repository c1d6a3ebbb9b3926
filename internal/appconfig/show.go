package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}
	if cfg == nil {
		cfg = &Config{}
	}

	name, version := cfg.Implementation()
	timeout := "none"
	if d := cfg.RequestTimeout(); d > 0 {
		timeout = d.String()
	}
	logFile := cfg.LogFilePath()
	if logFile == "" {
		logFile = "(stderr only)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:          %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Base URL:       %s\n", cfg.BaseURLOrDefault())
	fmt.Fprintf(out, "  Timeout:        %s\n", timeout)
	fmt.Fprintf(out, "  Transport:      %s\n", cfg.TransportMode())
	if cfg.TransportMode() == TransportHTTP {
		fmt.Fprintf(out, "  HTTP Address:   %s\n", cfg.HTTPAddrOrDefault())
	}
	fmt.Fprintf(out, "  Log File:       %s\n", logFile)
	fmt.Fprintf(out, "  Server:         %s %s\n", name, version)
}

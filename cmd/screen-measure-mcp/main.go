package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/screen-measure-mcp/internal/config"
	"github.com/ironsheep/screen-measure-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("screen-measure-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("screen-measure-mcp - MCP server for on-screen measurement and color picking")
			fmt.Println()
			fmt.Println("Usage: screen-measure-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug         Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=<path>          Palette profile (default: %s)\n", config.EnvProfile, config.DefaultProfilePath())
			fmt.Printf("  %s=false   Display cannot draw translucent windows\n", config.EnvLayeredWindows)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.FromEnv(os.Getenv)
	if cfg.Debug {
		log.Printf("Screen Measure MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Profile: %q, layered windows: %v", cfg.ProfilePath, cfg.Layered)
	}

	if Version != "dev" {
		server.Version = Version
	}

	srv := server.New(cfg)
	if err := srv.LoadProfile(); err != nil {
		log.Printf("Using default palette: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

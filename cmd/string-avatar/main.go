package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/string-avatar/internal/avatar"
	"github.com/ironsheep/string-avatar/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("string-avatar %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "render":
			if err := render(os.Args[2:], os.Getenv("STRING_AVATAR_FONT")); err != nil {
				fmt.Fprintf(os.Stderr, "render: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("STRING_AVATAR_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("String Avatar MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(server.Config{
		FontPath: os.Getenv("STRING_AVATAR_FONT"),
		Debug:    debug,
	})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("string-avatar - MCP server for deterministic string avatars")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  string-avatar [options]")
	fmt.Println("  string-avatar render <text> <output-file> [size]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  STRING_AVATAR_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println("  STRING_AVATAR_FONT=<path>        Default TrueType/OpenType font")
	fmt.Println()
	fmt.Println("Without a command the server communicates via MCP protocol over stdin/stdout.")
}

// render writes a character avatar for args[0] to args[1].
func render(args []string, fontPath string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: string-avatar render <text> <output-file> [size]")
	}

	opts := avatar.CharOptions(args[0])
	opts.FontPath = fontPath
	if len(args) == 3 {
		size, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", args[2], err)
		}
		opts.Size = size
	}

	img, err := avatar.Generate(avatar.NewFontCache(), opts)
	if err != nil {
		return err
	}
	return avatar.Save(img, args[1])
}

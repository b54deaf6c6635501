package main

import (
	"fmt"
	"os"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	storePath := getEnv("NEWSWATCH_STORE", "news.json")
	targetsPath := getEnv("NEWSWATCH_TARGETS_DSN", "targets.db")

	switch os.Args[1] {
	case "run":
		handleRun(storePath, targetsPath, os.Args[2:])
	case "targets":
		if len(os.Args) < 3 {
			printTargetsUsage()
			os.Exit(1)
		}
		handleTargetsCommand(os.Args[2], targetsPath, os.Args[3:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("newswatch - Change-monitoring news scraper")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  newswatch <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run        Run a monitoring pass against one or more targets")
	fmt.Println("  targets    Manage saved watch-list targets")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  NEWSWATCH_STORE        Path to the news store file (default: news.json)")
	fmt.Println("  NEWSWATCH_TARGETS_DSN  Path to the saved-targets database (default: targets.db)")
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/pevans/newswatch/targets"
)

func handleTargetsCommand(action, targetsPath string, args []string) {
	store, err := targets.NewStore(targetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open target store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch action {
	case "list":
		handleTargetsList(store, args)
	case "add":
		handleTargetsAdd(store, args)
	case "delete":
		handleTargetsDelete(store, args)
	case "help", "--help", "-h":
		printTargetsUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown targets command: %s\n\n", action)
		printTargetsUsage()
		os.Exit(1)
	}
}

func printTargetsUsage() {
	fmt.Println("newswatch targets - Manage saved watch-list targets")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  newswatch targets <action> [arguments]")
	fmt.Println()
	fmt.Println("Actions:")
	fmt.Println("  list       List saved targets (-name filters by monitor name)")
	fmt.Println("  add        Add a target (-name, -url required; -kind, -selector optional)")
	fmt.Println("  delete     Delete a target by ID")
	fmt.Println("  help       Show this help message")
}

func handleTargetsList(store *targets.Store, args []string) {
	fs := flag.NewFlagSet("targets list", flag.ExitOnError)
	name := fs.String("name", "", "filter by monitor name")
	fs.Parse(args)

	saved, err := store.List(*name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list targets: %v\n", err)
		os.Exit(1)
	}
	if len(saved) == 0 {
		fmt.Println("No targets saved.")
		return
	}

	fmt.Printf("%-36s  %-12s  %-6s  %s\n", "ID", "NAME", "KIND", "URL")
	for _, t := range saved {
		fmt.Printf("%-36s  %-12s  %-6s  %s\n", t.ID, t.Source, t.Kind, t.URL)
	}
}

func handleTargetsAdd(store *targets.Store, args []string) {
	fs := flag.NewFlagSet("targets add", flag.ExitOnError)
	name := fs.String("name", "", "monitor name the target belongs to (required)")
	url := fs.String("url", "", "target URL (required)")
	kind := fs.String("kind", "auto", "target kind: web, social, or auto")
	selector := fs.String("selector", "", "CSS selector for web targets")
	fs.Parse(args)

	if *name == "" || *url == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -url are required")
		os.Exit(1)
	}

	target, err := store.Add(*name, *url, *kind, *selector)
	if err != nil {
		switch {
		case errors.Is(err, targets.ErrDuplicateURL):
			fmt.Fprintf(os.Stderr, "Error: a target with URL %s already exists\n", *url)
		case errors.Is(err, targets.ErrInvalidKind):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error: failed to add target: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Added target %s (%s)\n", target.ID, target.URL)
}

func handleTargetsDelete(store *targets.Store, args []string) {
	fs := flag.NewFlagSet("targets delete", flag.ExitOnError)
	fs.Parse(args)

	if len(fs.Args()) < 1 {
		fmt.Fprintln(os.Stderr, "Error: target ID is required")
		os.Exit(1)
	}
	id, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid target ID: %v\n", err)
		os.Exit(1)
	}

	if err := store.Delete(id); err != nil {
		if errors.Is(err, targets.ErrTargetNotFound) {
			fmt.Fprintf(os.Stderr, "Error: target %s not found\n", id)
		} else {
			fmt.Fprintf(os.Stderr, "Error: failed to delete target: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Deleted target %s\n", id)
}

// Package commands implements CLI command handlers for ltsieve.
//
// This package provides the command-line interface layer for the application,
// implementing the clean, check and show-config subcommands. Each command
// implements the Runner interface and delegates the actual work to the
// classify and lists packages.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and validate configuration
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - clean: Run the full pipeline over the configured input list
//   - check: Classify domains given on the command line and print verdicts
//   - show-config: Print the effective configuration as TOML
//
// # Example Usage
//
// Creating and running a command:
//
//	cmd := commands.CreateCleanCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "ltsieve.conf",
//	    Verbose:    true,
//	}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Commands are thin wrappers around the processing pipeline, keeping CLI
// concerns separate from classification logic.
package commands

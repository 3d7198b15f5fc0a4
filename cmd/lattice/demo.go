package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/latticekit/lattice"
	"github.com/latticekit/lattice/internal/logging"
	"github.com/latticekit/lattice/internal/tui"
	"github.com/latticekit/lattice/pkg/adapters/file"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/spf13/cobra"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an interactive todo session",
	Long:  `Starts an interactive session against a file-backed todo store. State is persisted after each mutating action and restored on the next run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		key, _ := cmd.Flags().GetString("session")
		plain, _ := cmd.Flags().GetBool("plain")
		level, _ := cmd.Flags().GetString("log-level")

		ctx := cmd.Context()

		opts := []lattice.Option{
			lattice.WithSnapshotStore(file.New[domain.List](dataDir)),
			lattice.WithSnapshotKey(key),
		}
		if cmd.Flags().Changed("log-level") {
			opts = append(opts, lattice.WithLogger(logging.New(logging.ParseLevel(level))))
		}

		todos, err := lattice.New(ctx, opts...)
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		renderer := tui.NewRenderer(os.Stdout)
		if plain {
			renderer = tui.NewPlainRenderer(os.Stdout)
		}

		fmt.Println("lattice demo — type 'help' for commands")
		renderer.Render(todos.State())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			verb, rest, _ := strings.Cut(line, " ")
			rest = strings.TrimSpace(rest)

			switch verb {
			case "quit", "exit":
				fmt.Println("bye")
				return nil
			case "help":
				printHelp()
				continue
			}

			action, ok := parseAction(verb, rest)
			if !ok {
				fmt.Printf("unknown command %q, type 'help'\n", verb)
				continue
			}

			if err := todos.Dispatch(ctx, action); err != nil {
				fmt.Printf("dispatch failed: %v\n", err)
				continue
			}
			renderer.Render(todos.State())
		}
		return scanner.Err()
	},
}

func parseAction(verb, rest string) (domain.Action, bool) {
	switch verb {
	case "add":
		return domain.Add(rest), true
	case "toggle":
		id, err := strconv.Atoi(rest)
		if err != nil {
			return domain.Action{}, false
		}
		return domain.Toggle(id), true
	case "rm", "remove":
		id, err := strconv.Atoi(rest)
		if err != nil {
			return domain.Action{}, false
		}
		return domain.Remove(id), true
	case "edit":
		idText, title, _ := strings.Cut(rest, " ")
		id, err := strconv.Atoi(idText)
		if err != nil {
			return domain.Action{}, false
		}
		return domain.Edit(id, strings.TrimSpace(title)), true
	case "filter":
		return domain.SetFilter(domain.Filter(rest)), true
	case "clear":
		return domain.ClearCompleted(), true
	}
	return domain.Action{}, false
}

func printHelp() {
	fmt.Println(`commands:
  add <title>        add an item
  toggle <id>        toggle completion
  rm <id>            remove an item
  edit <id> <title>  retitle an item
  filter <name>      set filter (all, active, completed)
  clear              remove completed items
  quit               exit`)
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("data-dir", ".lattice", "Directory snapshots are written to")
	demoCmd.Flags().String("session", "default", "Snapshot key for this session")
	demoCmd.Flags().Bool("plain", false, "Disable terminal styling")
}

package main

import (
	"fmt"
	"os"

	"github.com/latticekit/lattice/internal/layers"
	"github.com/spf13/cobra"
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [dir]",
	Short: "Check package layering rules",
	Long:  `Verifies that the pure packages stay pure: the domain imports only the standard library, and the translator and effect packages never import the store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		violations, err := layers.Check(root, "github.com/latticekit/lattice")
		if err != nil {
			return fmt.Errorf("layer check failed: %w", err)
		}

		if len(violations) == 0 {
			fmt.Println("layering OK")
			return nil
		}

		for _, v := range violations {
			fmt.Println(v)
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

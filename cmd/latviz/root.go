package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "latviz",
	Short: "latviz renders Hasse diagrams of example lattices",
	Long: `latviz draws the order structure of the built-in example lattices
(powersets, chains, flat domains, the two-element lattice) as Hasse
diagrams, either as Graphviz DOT text or rendered images.`,
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

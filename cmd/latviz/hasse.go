package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deepinit-arek/latticeflow/hasse"
	"github.com/deepinit-arek/latticeflow/lattice"
)

var (
	latticeName string
	size        int
	outfile     string
	format      string
)

var hasseCmd = &cobra.Command{
	Use:   "hasse",
	Short: "Render the Hasse diagram of a built-in example lattice",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := buildDiagram(latticeName, size)
		if err != nil {
			return err
		}

		dot := g.Dot()
		if format == "dot" {
			if outfile == "" {
				_, err := os.Stdout.Write(dot)
				return err
			}
			path := outfile + ".dot"
			if err := os.WriteFile(path, dot, 0o644); err != nil {
				return err
			}
			fmt.Println("Exported dot graph to", color.GreenString(path))
			return nil
		}

		img, err := hasse.DotToImage(outfile, format, dot)
		if err != nil {
			return err
		}
		fmt.Println("Rendered", color.GreenString(img))
		return nil
	},
}

func init() {
	hasseCmd.Flags().StringVar(&latticeName, "lattice", "powerset", "one of powerset, chain, flat, bool")
	hasseCmd.Flags().IntVar(&size, "n", 3, "size parameter of the lattice")
	hasseCmd.Flags().StringVarP(&outfile, "out", "o", "", "output file name, without extension")
	hasseCmd.Flags().StringVar(&format, "format", "dot", "dot, png or svg")
	rootCmd.AddCommand(hasseCmd)
}

func buildDiagram(name string, n int) (*hasse.Graph, error) {
	switch name {
	case "bool":
		elems := []*lattice.Or{lattice.NewOr(false), lattice.NewOr(true)}
		return hasse.Diagram[lattice.Or, bool](elems, func(b bool) string {
			if b {
				return "⊤"
			}
			return "⊥"
		}), nil

	case "chain":
		elems := make([]*lattice.Max[int], n)
		for i := range elems {
			elems[i] = lattice.NewMax(i)
		}
		return hasse.Diagram[lattice.Max[int], int](elems, strconv.Itoa), nil

	case "flat":
		elems := []*lattice.Flat[string]{lattice.NewFlatBot[string]()}
		for i := 0; i < n; i++ {
			elems = append(elems, lattice.NewFlat(letter(i)))
		}
		elems = append(elems, lattice.NewFlatTop[string]())
		return hasse.Diagram[lattice.Flat[string], lattice.FlatValue[string]](elems, flatLabel), nil

	case "powerset":
		if n < 0 || n > 5 {
			return nil, fmt.Errorf("powerset size must be between 0 and 5, got %d", n)
		}
		elems := make([]*lattice.Set[string], 0, 1<<n)
		for mask := 0; mask < 1<<n; mask++ {
			var xs []string
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					xs = append(xs, letter(i))
				}
			}
			elems = append(elems, lattice.NewSet(xs...))
		}
		return hasse.DiagramFunc[lattice.Set[string], []string](elems, setLabel, slices.Equal[[]string]), nil
	}
	return nil, fmt.Errorf("unknown lattice %q", name)
}

func letter(i int) string {
	return string(rune('a' + i))
}

func flatLabel(v lattice.FlatValue[string]) string {
	switch v.Kind {
	case lattice.FlatBot:
		return "⊥"
	case lattice.FlatTop:
		return "⊤"
	default:
		return v.Const
	}
}

func setLabel(xs []string) string {
	if len(xs) == 0 {
		return "∅"
	}
	s := "{"
	for i, x := range xs {
		if i > 0 {
			s += ","
		}
		s += x
	}
	return s + "}"
}

// Command audiom-embed builds Audiom embed URLs from a YAML definition and
// offers small step-size utilities.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/audiom/embed-go/internal/config"
	"github.com/audiom/embed-go/internal/geo"
	"github.com/audiom/embed-go/pkg/embed"
	"github.com/audiom/embed-go/pkg/stepsize"
)

func main() {
	root := &cobra.Command{
		Use:     "audiom-embed",
		Short:   "Build embed URLs for the Audiom map widget",
		Version: "0.1.0",
	}

	root.AddCommand(urlCmd())
	root.AddCommand(stepCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func urlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Build an embed URL from a YAML definition",
		Run: func(cmd *cobra.Command, args []string) {
			path, _ := cmd.Flags().GetString("config")
			base, _ := cmd.Flags().GetString("base")
			centerFrom, _ := cmd.Flags().GetString("center-from")

			f, err := config.Load(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			if centerFrom != "" {
				center, err := geo.BoundCenter(centerFrom)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error deriving center: %v\n", err)
					os.Exit(1)
				}
				f.Center = []float64{center.Lon(), center.Lat()}
			}

			cfg, err := f.Build()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			if base != "" {
				fmt.Println(cfg.URLWithBase(base))
			} else {
				fmt.Println(cfg.URL())
			}
		},
	}
	cmd.Flags().StringP("config", "c", "embed.yaml", "Path to the embed definition file")
	cmd.Flags().StringP("base", "b", "", "Base origin (default "+embed.DefaultBaseURL+")")
	cmd.Flags().String("center-from", "", "Derive center from a GeoJSON file's bounds")
	return cmd
}

func stepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Step-size utilities",
	}

	convert := &cobra.Command{
		Use:   "convert <size> <unit>",
		Short: "Convert a step size (e.g. 2.5km mi)",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ss, err := stepsize.Parse(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			unit := stepsize.Unit(args[1])
			switch unit {
			case stepsize.Km, stepsize.M, stepsize.Mi, stepsize.Ft:
			default:
				fmt.Fprintf(os.Stderr, "Error: unknown unit %q (use km, m, mi, ft)\n", args[1])
				os.Exit(1)
			}
			fmt.Println(ss.ConvertTo(unit).String())
		},
	}
	cmd.AddCommand(convert)
	return cmd
}

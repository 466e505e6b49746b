// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorconv converts colors between color models on the
// command line.
//
//	colorconv "#1e3c5a"
//	colorconv --to lab "rgb(30, 60, 90)"
//	colorconv --to hsp rebeccapurple
package main

import (
	"fmt"
	"os"
	"strings"

	"cogentcore.org/colormodel"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var to string
	var all bool
	cmd := &cobra.Command{
		Use:   "colorconv [flags] <color>",
		Short: "convert colors between color models",
		Long: `colorconv parses a color in any supported form (hex, CSS name, or a
functional form such as rgb(...), cmyk(...), hsb(...), hsi(...),
hsl(...), hsp(...), lab(...), or xyz(...)) and prints it in the
requested model.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colormodel.FromString(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if all {
				for _, m := range modelNames {
					fmt.Fprintf(out, "%-5s %s\n", m, convert(c, m).String())
				}
				fmt.Fprintf(out, "%-5s #%s\n", "hex", c.ToRGB().AsHex())
				fmt.Fprintln(out, swatch(c))
				return nil
			}
			fmt.Fprintln(out, render(convert(c, to), to))
			return nil
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "rgb", "target color model: one of "+strings.Join(modelNames, ", ")+", or hex")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print the color in every model")
	return cmd
}

var modelNames = []string{"rgb", "cmyk", "hsb", "hsi", "hsl", "hsp", "lab", "xyz"}

func convert(c colormodel.Model, to string) colormodel.Model {
	switch strings.ToLower(to) {
	case "cmyk":
		return c.ToCMYK()
	case "hsb", "hsv":
		return c.ToHSB()
	case "hsi":
		return c.ToHSI()
	case "hsl":
		return c.ToHSL()
	case "hsp":
		return c.ToHSP()
	case "lab":
		return c.ToLAB()
	case "xyz":
		return c.ToXYZ()
	default:
		return c.ToRGB()
	}
}

func render(c colormodel.Model, to string) string {
	if strings.ToLower(to) == "hex" {
		return swatch(c) + " #" + c.ToRGB().AsHex()
	}
	return swatch(c) + " " + c.String()
}

// swatch returns a small colored block for terminals that support it;
// on dumb terminals it degrades to plain text.
func swatch(c colormodel.Model) string {
	out := termenv.NewOutput(os.Stdout)
	return out.String("  ").Background(out.Color("#" + c.ToRGB().AsHex())).String()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"marque/internal/format"
	"marque/internal/treeio"
)

var headerColor = color.New(color.FgCyan, color.Bold)

var canonOutDir string

func init() {
	canonCmd.Flags().StringVarP(&canonOutDir, "output", "o", "", "write rendered files into this directory instead of stdout")
}

var canonCmd = &cobra.Command{
	Use:   "canon <file>...",
	Short: "Render encoded syntax trees as canonical source",
	Long: `Canon reads syntax trees produced by the marque parser (msgpack
documents) and prints them back as canonical surface syntax.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)

		// Trees are independent and the printer keeps no shared state,
		// so files render in parallel and print in input order.
		results := make([]string, len(args))
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				rendered, err := renderFile(path)
				if err != nil {
					return err
				}
				results[i] = rendered
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if canonOutDir != "" {
			return writeRenderedFiles(canonOutDir, args, results)
		}

		out := cmd.OutOrStdout()
		for i, rendered := range results {
			if len(args) > 1 {
				headerColor.Fprintf(out, "== %s\n", args[i])
			}
			fmt.Fprint(out, withTrailingNewline(rendered))
		}
		return nil
	},
}

func renderFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("canon: %w", err)
	}
	defer f.Close()

	tree, err := treeio.Decode(f)
	if err != nil {
		return "", fmt.Errorf("canon: %s: %w", path, err)
	}
	return format.Tree(tree), nil
}

// writeRenderedFiles places one rendered file per input into dir.
func writeRenderedFiles(dir string, paths, rendered []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("canon: %w", err)
	}
	for i, path := range paths {
		target := filepath.Join(dir, outputName(path))
		text := withTrailingNewline(rendered[i])
		if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
			return fmt.Errorf("canon: %w", err)
		}
	}
	return nil
}

// outputName derives the rendered file name from an input path:
// `doc.mqt` becomes `doc.mq`, anything else gets `.mq` appended.
func outputName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext == ".mqt" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".mq"
}

func withTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// configureColor resolves the color mode: flag, then manifest, then auto.
func configureColor(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	if mode == "" {
		if manifest, ok, err := loadProjectManifest("."); err == nil && ok {
			mode = manifest.Config.Canon.Color
		}
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

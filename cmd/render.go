package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/softsage/chatembed/internal/markdown"
)

var (
	renderUnsafe bool
	renderOutDir string
)

var renderCmd = &cobra.Command{
	Use:   "render [glob...]",
	Short: "Render markdown files to HTML",
	Long: `Renders markdown files matched by the given glob patterns (doublestar
syntax, e.g. 'docs/**/*.md') through the widget's rendering pipeline.
Output goes to stdout, or to --out as .html files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer := markdown.Default()
		if renderUnsafe {
			renderer = markdown.Unsafe()
		}

		var paths []string
		for _, pattern := range args {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			paths = append(paths, matches...)
		}
		if len(paths) == 0 {
			return fmt.Errorf("no files matched")
		}

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			html := renderer.Parse(string(data))

			if renderOutDir == "" {
				fmt.Println(html)
				continue
			}

			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".html"
			outPath := filepath.Join(renderOutDir, name)
			if err := os.MkdirAll(renderOutDir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "rendered %s -> %s\n", path, outPath)
			}
		}

		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderUnsafe, "unsafe", false, "preserve raw HTML (trusted content only)")
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "output directory for .html files")
	rootCmd.AddCommand(renderCmd)
}

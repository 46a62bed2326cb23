package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/skdltmxn/demangle-go/swift"
	"github.com/spf13/cobra"
)

var (
	treeJSON    bool
	treeNoColor bool
)

var treeCmd = &cobra.Command{
	Use:   "tree <symbol>",
	Short: "Show the decoded structure of a mangled symbol",
	Long: `Show the node tree a mangled symbol decodes to.

Each line is one node: its kind, then the text payload when present. Input
that does not decode shows a Failure root carrying the original text and
the offset where decoding stopped. With --json the tree is emitted as a
JSON document instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "emit the tree as JSON")
	treeCmd.Flags().BoolVar(&treeNoColor, "no-color", false, "disable colored output")
}

type treeColors struct {
	kind func(string, ...any) string
	text func(string, ...any) string
	dim  func(string, ...any) string
}

func newTreeColors() *treeColors {
	return &treeColors{
		kind: color.New(color.FgCyan).SprintfFunc(),
		text: color.New(color.FgYellow).SprintfFunc(),
		dim:  color.New(color.FgHiBlack).SprintfFunc(),
	}
}

func plainTreeColors() *treeColors {
	return &treeColors{kind: fmt.Sprintf, text: fmt.Sprintf, dim: fmt.Sprintf}
}

func useColor() bool {
	if treeNoColor {
		return false
	}
	f, ok := output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func runTree(cmd *cobra.Command, args []string) error {
	opts := demangleOptions()
	root := swift.DemangleToTree(args[0], opts)

	if treeJSON {
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		fmt.Fprintf(output, "%s\n", data)
		return nil
	}

	colors := plainTreeColors()
	if useColor() {
		colors = newTreeColors()
	}

	root.Walk(func(n *swift.Node, depth int) bool {
		line := strings.Repeat("  ", depth) + colors.kind("%s", n.Kind())
		if n.Text() != "" {
			line += " " + colors.text("%q", n.Text())
		}
		fmt.Fprintln(output, line)
		return true
	})
	fmt.Fprintln(output, colors.dim("=> %s", swift.NodeToString(root, opts)))
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skdltmxn/demangle-go/swift"
	"github.com/spf13/cobra"
)

var (
	outputFile string
	output     io.Writer

	sugarTypes  bool
	noFieldType bool
)

var rootCmd = &cobra.Command{
	Use:   "demangle [symbol...]",
	Short: "Swift symbol demangler",
	Long: `demangle turns mangled Swift symbol names back into readable
declarations.

Symbols given as arguments are demangled one per line. With no arguments,
standard input is copied to the output with every mangled symbol replaced
by its demangling, so the tool works as a filter behind nm, a linker map,
or a crash log. Anything that does not decode is passed through untouched.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
	RunE: runDemangle,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&sugarTypes, "sugar", false, "print Array and Optional types in sugared form")
	rootCmd.PersistentFlags().BoolVar(&noFieldType, "no-field-type", false, "omit field types from field offset symbols")

	rootCmd.AddCommand(treeCmd)
}

func demangleOptions() swift.DemangleOptions {
	opts := swift.DefaultOptions()
	opts.SynthesizeSugarOnTypes = sugarTypes
	if noFieldType {
		opts.DisplayTypeOfIVarFieldOffset = false
	}
	return opts
}

func runDemangle(cmd *cobra.Command, args []string) error {
	opts := demangleOptions()

	if len(args) > 0 {
		for _, sym := range args {
			fmt.Fprintln(output, swift.Demangle(sym, opts))
		}
		return nil
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fmt.Fprintln(output, rewriteLine(sc.Text(), opts))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// isSymbolChar reports whether c can appear in a mangled symbol token.
func isSymbolChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}

// rewriteLine replaces every maximal symbol token that looks mangled with
// its demangling and leaves the surrounding text untouched.
func rewriteLine(line string, opts swift.DemangleOptions) string {
	var out strings.Builder
	i := 0
	for i < len(line) {
		if !isSymbolChar(line[i]) {
			out.WriteByte(line[i])
			i++
			continue
		}
		j := i
		for j < len(line) && isSymbolChar(line[j]) {
			j++
		}
		token := line[i:j]
		if swift.IsMangled(token) {
			out.WriteString(swift.Demangle(token, opts))
		} else {
			out.WriteString(token)
		}
		i = j
	}
	return out.String()
}

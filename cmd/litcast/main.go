package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"litcast/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "litcast",
	Short: "Numeric cast linter for C# sources",
	Long:  `litcast finds casts of numeric literals, such as (long)1, and rewrites them into suffixed literals, such as 1L`,
}

// main wires up subcommands and persistent flags, then executes the root
// command. A command error exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0=default)")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timing information")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the given file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the given file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to the given file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

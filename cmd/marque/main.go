package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"marque/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "marque",
	Short: "Marque markup language toolchain",
	Long:  `Marque turns parsed markup trees back into clean, canonical source`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(canonCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

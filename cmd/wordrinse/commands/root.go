// Package commands implements the CLI commands for wordrinse.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wordrinse/wordrinse/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "wordrinse",
	Short: "Normalize HTML pasted from word processors",
	Long: `Wordrinse turns HTML exported by Microsoft Word, Apple Pages/TextEdit,
and Google Docs into clean, semantic, portable HTML.

It strips vendor markup, recovers bold/italic/super/subscript intent from
inline styles, repairs invalid nesting, detects reversed document order,
and emits readably formatted output.

Examples:
  # Normalize a pasted file
  wordrinse clean -f pasted.html

  # Normalize from stdin, write to a file
  cat pasted.html | wordrinse clean -o clean.html

  # Show what was changed
  wordrinse clean -f pasted.html --stats

  # Convert to markdown after normalizing
  wordrinse clean -f pasted.html --format markdown`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.wordrinse.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".wordrinse")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDRINSE")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// debugEnabled reports whether debug logging was requested.
func debugEnabled() bool {
	return viper.GetBool("debug")
}

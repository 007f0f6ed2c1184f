package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordrinse/wordrinse/internal/fetch"
	"github.com/wordrinse/wordrinse/internal/logger"
	"github.com/wordrinse/wordrinse/internal/output"
	"github.com/wordrinse/wordrinse/pkg/normalizer/wordhtml"
	"github.com/wordrinse/wordrinse/pkg/publish"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [url-or-file]",
	Short: "Normalize word-processor HTML",
	Long: `Normalize HTML pasted from a word processor.

Reads from a file (-f), a URL or file argument, or stdin, and writes the
normalized HTML to stdout or a file (-o).

Examples:
  # Normalize a file
  wordrinse clean -f pasted.html

  # From stdin with stats
  cat pasted.html | wordrinse clean --stats

  # Strict preset (no layout styles survive)
  wordrinse clean -f pasted.html --preset strict

  # Apply publish rewrites for a target platform
  wordrinse clean -f pasted.html --link-rel nofollow --link-target _blank`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	// Input
	flags.StringP("file", "f", "", "read HTML from file instead of argument/stdin")

	// Pipeline config
	flags.String("preset", "", "config preset: minimal, strict")
	flags.String("format", "html", "output format: html, text, markdown")
	flags.Bool("no-reorder", false, "disable the document-order correction heuristic")
	flags.Bool("no-format", false, "disable readability line breaks in output")

	// Publish rewrites (applied after normalization)
	flags.String("link-rel", "", "set rel attribute on every anchor")
	flags.String("link-target", "", "set target attribute on every anchor")
	flags.Bool("spacers", false, "insert spacer paragraphs between blocks")

	// Output
	flags.StringP("output", "o", "", "write normalized output to file")
	flags.Bool("stats", false, "print a stats summary to stderr")
	flags.String("report", "", "write a full result report: json, yaml")
}

func runClean(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	input, source, err := readInput(cmd, args)
	if err != nil {
		logError("%v", err)
		return err
	}

	cfg := configFromFlags(cmd)
	if err := cfg.Validate(); err != nil {
		logError("invalid configuration: %v", err)
		return err
	}

	n := wordhtml.New(cfg)

	start := time.Now()
	result := n.CleanWithStats(input)
	logger.Debug("clean finished", "source", source, "duration", time.Since(start))

	for _, w := range result.Warnings {
		logger.Warn(w.String())
	}

	content := result.Content
	if content, err = applyPublish(cmd, content); err != nil {
		logError("%v", err)
		return err
	}

	if report, _ := flags.GetString("report"); report != "" {
		w, err := output.NewWriter(os.Stderr, output.Format(report))
		if err != nil {
			logError("%v", err)
			return err
		}
		if err := w.Write(result); err != nil {
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}

	if showStats, _ := flags.GetBool("stats"); showStats {
		fmt.Fprint(os.Stderr, result.Stats.String())
	}

	if outFile, _ := flags.GetString("output"); outFile != "" {
		return os.WriteFile(outFile, []byte(content), 0o644)
	}
	fmt.Println(content)
	return nil
}

// configFromFlags builds the pipeline config from the preset and overrides.
func configFromFlags(cmd *cobra.Command) *wordhtml.Config {
	flags := cmd.Flags()

	var cfg *wordhtml.Config
	preset, _ := flags.GetString("preset")
	switch preset {
	case "minimal":
		cfg = wordhtml.PresetMinimal()
	case "strict":
		cfg = wordhtml.PresetStrict()
	default:
		cfg = wordhtml.DefaultConfig()
	}

	if format, _ := flags.GetString("format"); format != "" {
		cfg.Output = wordhtml.OutputFormat(format)
	}
	if noReorder, _ := flags.GetBool("no-reorder"); noReorder {
		cfg.CorrectDocumentOrder = false
	}
	if noFormat, _ := flags.GetBool("no-format"); noFormat {
		cfg.FormatOutput = false
	}
	cfg.Debug = cfg.Debug || debugEnabled()

	return cfg
}

// applyPublish runs the post-normalization platform rewrites when any
// publish flag is set.
func applyPublish(cmd *cobra.Command, content string) (string, error) {
	flags := cmd.Flags()
	rel, _ := flags.GetString("link-rel")
	target, _ := flags.GetString("link-target")
	spacers, _ := flags.GetBool("spacers")

	if rel == "" && target == "" && !spacers {
		return content, nil
	}

	return publish.Apply(content, &publish.Options{
		LinkRel:          rel,
		LinkTarget:       target,
		SpacerParagraphs: spacers,
	})
}

// readInput resolves the HTML source: -f file, a URL/file argument, or stdin.
func readInput(cmd *cobra.Command, args []string) (content, source string, err error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), file, nil
	}

	if len(args) > 0 {
		arg := args[0]
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			content, err := fetch.New(fetch.DefaultConfig()).Fetch(arg)
			return content, arg, err
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", arg, err)
		}
		return string(data), arg, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	fuzzy "github.com/jason0x43/go-fuzzy"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags.
var version = "1.0.0"

const (
	releaseOwner = "jason0x43"
	releaseRepo  = "go-fuzzy"
)

var (
	flagJSON   bool
	flagXML    bool
	flagScores bool
	flagLimit  int
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:           "fuzzy",
	Short:         "Rank candidate strings against a typed abbreviation",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var matchCmd = &cobra.Command{
	Use:   "match ABBREV [CANDIDATE...]",
	Short: "Score and rank candidates against an abbreviation",
	Long: "Score every candidate against ABBREV and print the matches, best " +
		"first, with matched characters marked. Candidates are read from the " +
		"command line, or from stdin (one per line) when none are given.",
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check GitHub for a newer release",
	RunE:  runUpdate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fuzzy version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version)
	},
}

func init() {
	matchCmd.Flags().BoolVar(&flagJSON, "json", false, "emit script-filter JSON")
	matchCmd.Flags().BoolVar(&flagXML, "xml", false, "emit legacy XML")
	matchCmd.Flags().BoolVar(&flagScores, "scores", false, "prefix each match with its score")
	matchCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum results (0 = default, -1 = unlimited)")
	matchCmd.Flags().StringVar(&flagConfig, "config", "", "matcher configuration plist")

	rootCmd.AddCommand(matchCmd, updateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runMatch(_ *cobra.Command, args []string) error {
	abbrev := args[0]

	candidates := args[1:]
	if len(candidates) == 0 {
		var err error
		if candidates, err = readLines(os.Stdin); err != nil {
			return fmt.Errorf("reading candidates: %w", err)
		}
	}

	weights := fuzzy.DefaultWeights()
	limit := flagLimit

	if flagConfig != "" {
		cfg, err := fuzzy.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		weights = cfg.Weights
		if limit == 0 {
			limit = cfg.MaxResults
		}
	}

	matcher := fuzzy.NewMatcher(weights)
	items := fuzzy.Rank(matcher, fuzzy.StringSource(candidates), abbrev, limit)

	switch {
	case flagJSON:
		out, err := json.Marshal(items)
		if err != nil {
			return err
		}
		fmt.Println(string(out))

	case flagXML:
		out, err := fuzzy.ToXML(items)
		if err != nil {
			return err
		}
		fmt.Println(out)

	default:
		renderer := fuzzy.NewTermRenderer()
		for _, item := range items {
			line := renderer.Render(fuzzy.Result{Score: item.Score, Pieces: item.Pieces})
			if flagScores {
				fmt.Printf("%.6f  %s\n", item.Score, line)
			} else {
				fmt.Println(line)
			}
		}
	}

	return nil
}

func runUpdate(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	release, err := fuzzy.LatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return err
	}

	newer, err := release.IsNewer(version)
	if err != nil {
		return err
	}

	if newer {
		fmt.Printf("Version %s is available at %s\n", release.Version, release.URL)
	} else {
		fmt.Printf("Version %s is the latest release\n", version)
	}

	return nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}

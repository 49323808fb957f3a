// Package main is prospectctl, a command line companion for inspecting and
// maintaining prospect CSV files without going through the HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/prospectdb/prospectdb/internal/csvdb"
)

func main() {
	if err := mainImpl(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "prospectctl: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "stats":
		return runStats(args[1:])
	case "dedupe":
		return runDedupe(args[1:])
	case "export":
		return runExport(args[1:])
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: prospectctl <command> [flags]

commands:
  stats   -csv <path>
          Print summary statistics for a prospect CSV.
  dedupe  -csv <path> [-column <name>] [-keep first|last]
          Remove duplicate rows in place.
  export  -csv <path> -out <path> [-min-score <n>] [-locations a,b]
          [-companies a,b] [-columns a,b]
          Export a filtered segment to a new CSV.`)
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	csvPath := fs.String("csv", "", "Path to the CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return fmt.Errorf("stats: -csv is required")
	}

	stats, err := csvdb.GetStats(*csvPath)
	if err != nil {
		return err
	}

	fmt.Printf("Profiles:      %s\n", humanize.Comma(int64(stats.TotalProfiles)))
	fmt.Printf("Average score: %.2f\n", stats.AvgScore)
	fmt.Printf("Current role:  %s\n", humanize.Comma(int64(stats.CurrentRoleCount)))
	if stats.FoundDateRange.Earliest != "" {
		fmt.Printf("Found dates:   %s to %s\n", stats.FoundDateRange.Earliest, stats.FoundDateRange.Latest)
	}

	printBreakdown("Score band", stats.ScoreDistribution)
	printBreakdown("Location", stats.LocationBreakdown)
	printBreakdown("Company size", stats.CompanySizeBreakdown)
	return nil
}

// printBreakdown renders a count map as a table, highest count first.
func printBreakdown(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Println()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{label, "Count"})
	for _, k := range keys {
		table.Append([]string{k, humanize.Comma(int64(counts[k]))})
	}
	table.Render()
}

func runDedupe(args []string) error {
	fs := flag.NewFlagSet("dedupe", flag.ContinueOnError)
	csvPath := fs.String("csv", "", "Path to the CSV file")
	column := fs.String("column", "", "Column to deduplicate on (default: LinkedIn URL)")
	keep := fs.String("keep", "first", "Which duplicate occurrence survives (first or last)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return fmt.Errorf("dedupe: -csv is required")
	}

	res, err := csvdb.Deduplicate(*csvPath, *column, *keep)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %s duplicate(s): %s -> %s rows\n",
		humanize.Comma(int64(res.DuplicatesRemoved)),
		humanize.Comma(int64(res.OriginalCount)),
		humanize.Comma(int64(res.FinalCount)))
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	csvPath := fs.String("csv", "", "Path to the source CSV file")
	outPath := fs.String("out", "", "Destination path for the exported segment")
	minScore := fs.String("min-score", "", "Inclusive lower bound on score")
	locations := fs.String("locations", "", "Comma-separated location substrings")
	companies := fs.String("companies", "", "Comma-separated company substrings")
	columns := fs.String("columns", "", "Comma-separated columns to include")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" || *outPath == "" {
		return fmt.Errorf("export: -csv and -out are required")
	}

	opts := csvdb.ExportOptions{
		Locations: splitList(*locations),
		Companies: splitList(*companies),
		Columns:   splitList(*columns),
	}
	if *minScore != "" {
		v, err := strconv.ParseFloat(*minScore, 64)
		if err != nil {
			return fmt.Errorf("export: invalid -min-score %q", *minScore)
		}
		opts.MinScore = &v
	}

	res, err := csvdb.Export(*csvPath, *outPath, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %s profile(s) to %s\n", humanize.Comma(int64(res.ProfilesExported)), res.OutputPath)
	if len(res.ColumnsIncluded) > 0 {
		fmt.Printf("Columns: %s\n", strings.Join(res.ColumnsIncluded, ", "))
	}
	return nil
}

// splitList turns "a, b" into ["a", "b"], dropping empty elements.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

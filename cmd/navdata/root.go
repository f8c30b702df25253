// Root command for the navdata CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/navdata/internal/paths"
	"github.com/dukaforge/navdata/internal/sqlite"
	"github.com/dukaforge/navdata/pkg/arinc424"
	fw "github.com/dukaforge/navdata/pkg/fixedwidth"
)

// Global flag values.
var (
	flagConfigDir string
	flagOutput    string
	flagMissing   bool
)

var rootCmd = &cobra.Command{
	Use:   "navdata <arinc-file>",
	Short: "Convert ARINC 424 navigation data to a SQLite database",
	Long: `navdata reads a fixed-width ARINC 424 navigation data file (airports,
runways, procedures, waypoints, navaids, airways, airspace) and exports the
parsed records to a SQLite database, one table per record type.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "SQLite file to export to (default: "+paths.DefaultOutputName+")")
	rootCmd.Flags().BoolVar(&flagMissing, "missing", false, "report record types and continuations that were not parsed")

	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	output, err := paths.ResolveOutput(flagOutput, cfg.GetString(cfgKeyOutput))
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	tree, err := arinc424.NewSchema()
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	source, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer source.Close()

	start := time.Now()
	stats, err := tree.Ingest(source, arinc424.HeaderLines)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	elapsed := time.Since(start)

	writer, err := sqlite.Open(output)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := writer.WriteTree(tree); err != nil {
		return err
	}
	info := sqlite.RunInfo{SourcePath: args[0], Stats: stats, LoadTime: elapsed}
	if err := writer.WriteRunInfo(info); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %d records in %s (%d stored, %d merged, %d unclassified, %d dropped continuations)\n",
		stats.Lines, elapsed.Round(time.Millisecond),
		stats.Stored, stats.MergedAuxiliary, stats.Unclassified, stats.DroppedContinuations)
	fmt.Fprintf(out, "Wrote %s\n", output)

	if flagMissing {
		printDiagnostics(out, tree)
	}
	return nil
}

// printDiagnostics renders the per-class counters of data the run could not
// place: unmatched discriminator values and unsupported continuation numbers.
func printDiagnostics(w io.Writer, tree *fw.Tree) {
	diags := tree.Diagnostics()
	if len(diags) == 0 {
		fmt.Fprintln(w, "All records were recognized.")
		return
	}

	lastClass := ""
	lastKind := fw.DiagKind(-1)
	for _, d := range diags {
		if d.Class != lastClass {
			fmt.Fprintf(w, "For class %s\n", d.Class)
			lastClass = d.Class
			lastKind = -1
		}
		if d.Kind != lastKind {
			switch d.Kind {
			case fw.DiagUnknownValue:
				fmt.Fprintln(w, "\tUnknown record types:")
			case fw.DiagUnusedContinuation:
				fmt.Fprintln(w, "\tUnused continuation records:")
			}
			lastKind = d.Kind
		}
		fmt.Fprintf(w, "\t\t%s (%d records)\n", d.Value, d.Count)
	}
}

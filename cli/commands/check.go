package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/spanned-go/cli/internal/ui"
	"github.com/satishbabariya/spanned-go/cli/internal/watch"
	"github.com/satishbabariya/spanned-go/conf"
)

var checkCmd = &cobra.Command{
	Use:   "check [config-path]",
	Short: "Check a configuration file",
	Long: `Check a configuration file for syntax and value errors.

This command will:
- Parse the file and every include it names
- Report each problem with an annotated source snippet
- Display a summary of the loaded entries`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var (
	checkConfigPath string
	checkWatch      bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "Path to configuration file")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Re-check whenever a loaded file changes")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := getConfigPath(checkConfigPath, args)

	ui.PrintHeader("spanned", "Check Configuration")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("configuration file not found: %s", path)
	}

	if !checkWatch {
		return checkOnce(path)
	}

	// First pass decides which files watching covers
	files := []string{path}
	if f, cerr := conf.Load(path); cerr == nil {
		files = loadedFiles(path, f)
	}

	w, err := watch.NewWatcher(files, func() error {
		if err := checkOnce(path); err != nil {
			ui.PrintWarning("Waiting for changes...")
		} else {
			ui.PrintInfo("Waiting for changes...")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh
	return nil
}

func checkOnce(path string) error {
	f, cerr := conf.Load(path)
	if cerr != nil {
		ui.PrintError("Configuration check failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", cerr.Error())
		return fmt.Errorf("configuration has errors")
	}

	absPath, _ := filepath.Abs(path)
	ui.PrintSuccess("Configuration is valid: %s", absPath)

	files := loadedFiles(path, f)

	fmt.Println()
	ui.PrintSection("Summary")
	ui.PrintList([]string{
		fmt.Sprintf("%d entr%s", len(f.Entries()), plural(len(f.Entries()), "y", "ies")),
		fmt.Sprintf("%d file%s", len(files), plural(len(files), "", "s")),
	})

	if len(f.Entries()) > 0 {
		fmt.Println()
		ui.PrintSection("Entries")
		rows := make([][]string, 0, len(f.Entries()))
		for _, e := range f.Entries() {
			rows = append(rows, []string{e.Key.Content, e.Value.Content, e.Value.Span.String()})
		}
		ui.PrintTable([]string{"Key", "Value", "Defined At"}, rows)
	}

	return nil
}

// loadedFiles returns the root path plus every file entries were read
// from, sorted for stable output.
func loadedFiles(path string, f *conf.File) []string {
	seen := map[string]bool{path: true}
	for _, e := range f.Entries() {
		if file := e.Key.Span.File(); file != "" {
			seen[file] = true
		}
	}
	files := make([]string, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

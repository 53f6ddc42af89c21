package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/spanned-go/annotate"
	"github.com/satishbabariya/spanned-go/spanned"
)

var locateCmd = &cobra.Command{
	Use:   "locate <file> <start> [end]",
	Short: "Resolve a byte range to its source location",
	Long: `Resolve a byte range to its source location.

Prints the file:line:column position of the range and an annotated
snippet of the surrounding source. With no end offset the range is
zero width and a single caret marks the byte.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	file := args[0]
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid start offset %q", args[1])
	}
	end := start
	if len(args) == 3 {
		if end, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("invalid end offset %q", args[2])
		}
	}
	if start < 0 || end < start {
		return fmt.Errorf("invalid range %d..%d", start, end)
	}

	src, rerr := spanned.ReadFileString(file)
	if rerr != nil {
		return fmt.Errorf("cannot read %s: %w", file, rerr)
	}
	if end > len(src.Content) {
		return fmt.Errorf("range %d..%d is past the end of %s (%d bytes)", start, end, file, len(src.Content))
	}

	sp := spanned.NewSpan(start, end, file)
	fmt.Println(sp.String())

	m := annotate.Message{
		Severity: "info",
		Title:    fmt.Sprintf("bytes %d..%d of %s", start, end, file),
		Snippets: []annotate.Snippet{
			{
				Source:      src.Content,
				Origin:      file,
				Fold:        true,
				Annotations: []annotate.Annotation{{Start: start, End: end, Level: annotate.LevelError}},
			},
		},
	}
	fmt.Print(annotate.Styled().Render(m))
	return nil
}

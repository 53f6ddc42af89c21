package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/spanned-go/cli/internal/ui"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the configuration format reference",
	Long:  `Show the configuration format reference rendered in the terminal.`,
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

const formatGuide = `# Configuration Format

A configuration file is a sequence of lines. Blank lines are ignored.

## Entries

Each entry is a key, an equals sign, and a value:

` + "```" + `
host = localhost
port = 8080
timeout = 30s
` + "```" + `

Keys use letters, digits, and the characters ` + "`_`" + `, ` + "`.`" + ` and ` + "`-`" + `.
Whitespace around the key and the value is trimmed.

## Comments

Everything after ` + "`#`" + ` is a comment, unless the value is quoted:

` + "```" + `
# a full line comment
host = localhost  # a trailing comment
motd = "quoted # not a comment"
` + "```" + `

## Quoted values

Double quotes keep leading and trailing whitespace and ` + "`#`" + `
characters. The quotes themselves are not part of the value.

## Includes

A file can pull in another file. The path is resolved relative to the
file that names it:

` + "```" + `
include common.conf
` + "```" + `

Included entries behave as if written in place. Defining the same key
twice, in any file, is an error. Includes may nest up to 8 levels and
must not form a cycle.

## Types

Values are text. The reader can interpret them on demand as integers,
floats, booleans (` + "`true`" + ` or ` + "`false`" + `) or durations
(` + "`30s`" + `, ` + "`1h30m`" + `).
`

func runDocs(cmd *cobra.Command, args []string) error {
	return ui.PrintMarkdown(formatGuide)
}

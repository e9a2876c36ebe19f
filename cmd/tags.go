package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/moneykeeper/moneykeeper/renderer"
)

type tagsCmd struct{}

func (*tagsCmd) Name() string     { return "tags" }
func (*tagsCmd) Synopsis() string { return "search entries by tag" }
func (*tagsCmd) Usage() string {
	return `mk tags <tag>...

  Lists every entry carrying at least one of the given tags.
`
}

func (c *tagsCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one tag expected")
		return subcommands.ExitUsageError
	}

	l, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows := l.SearchByTags(f.Args()...)
	title := fmt.Sprintf("Entries tagged #%s", strings.Join(f.Args(), " #"))
	printMarkdown(renderer.EntriesMarkdown(title, rows))
	return subcommands.ExitSuccess
}

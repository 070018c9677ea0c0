package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/idilsaglam/todolists/internal/cli"
	"github.com/idilsaglam/todolists/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group todos by pending/done in `show`")
	theme := flag.String("theme", ui.DefaultTheme, "color theme: "+strings.Join(ui.Themes(), ", "))
	noColor := flag.Bool("no-color", false, "disable colored output")
	forceColor := flag.Bool("color", false, "force colored output even when not a terminal")
	file := flag.String("file", "", "store file (default $TODO_FILE or ./todos.json)")
	flag.Parse()

	if err := ui.SetTheme(*theme); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	_, noColorEnv := os.LookupEnv("NO_COLOR")
	ui.SetColorForcing(*forceColor, *noColor || noColorEnv)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group: *groupPending,
		Path:  *file,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/store/jsonstore"
	"github.com/idilsaglam/todolists/internal/todo"
	"github.com/idilsaglam/todolists/internal/tui"
	"github.com/idilsaglam/todolists/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool   // show todos grouped by pending/done
	Path  string // store file; empty means jsonstore.DefaultPath
}

// errUsage marks argument errors; Run maps it to exit code 2.
var errUsage = errors.New("usage")

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	if opt.Path == "" {
		p, err := jsonstore.DefaultPath()
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		opt.Path = p
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "lists", "ls":
		return doLists(opt)

	case "show":
		if len(a) != 1 {
			return usage("todo show <list>")
		}
		li, err := userIndex(a[0])
		if err != nil {
			return usage("todo show <list>")
		}
		return doShow(opt, li)

	case "new":
		if len(a) == 0 {
			return usage("todo new <name...>")
		}
		name := strings.TrimSpace(strings.Join(a, " "))
		return mutate(opt, "list created", func(s model.Store) (model.Store, error) {
			return todo.CreateList(s, name)
		})

	case "rename":
		if len(a) < 2 {
			return usage("todo rename <list> <name...>")
		}
		li, err := userIndex(a[0])
		if err != nil {
			return usage("todo rename <list> <name...>")
		}
		name := strings.TrimSpace(strings.Join(a[1:], " "))
		return mutate(opt, "list renamed", func(s model.Store) (model.Store, error) {
			return todo.RenameList(s, li, name)
		})

	case "rmlist":
		if len(a) != 1 {
			return usage("todo rmlist <list>")
		}
		li, err := userIndex(a[0])
		if err != nil {
			return usage("todo rmlist <list>")
		}
		return mutate(opt, "list removed", func(s model.Store) (model.Store, error) {
			return todo.DeleteList(s, li)
		})

	case "add":
		if len(a) < 2 {
			return usage("todo add <list> <title...>")
		}
		li, err := userIndex(a[0])
		if err != nil {
			return usage("todo add <list> <title...>")
		}
		title := strings.TrimSpace(strings.Join(a[1:], " "))
		return mutate(opt, "added", func(s model.Store) (model.Store, error) {
			return todo.AddTodo(s, li, title)
		})

	case "done":
		return doDone(opt, a)

	case "rm":
		if len(a) != 2 {
			return usage("todo rm <list> <todo>")
		}
		li, ti, err := userIndexes(a[0], a[1])
		if err != nil {
			return usage("todo rm <list> <todo>")
		}
		return mutate(opt, "removed", func(s model.Store) (model.Store, error) {
			return todo.DeleteTodo(s, li, ti)
		})

	case "all":
		if len(a) != 1 {
			return usage("todo all <list>")
		}
		li, err := userIndex(a[0])
		if err != nil {
			return usage("todo all <list>")
		}
		return mutate(opt, "all todos completed", func(s model.Store) (model.Store, error) {
			return todo.CompleteAll(s, li)
		})

	case "export":
		switch {
		case len(a) == 0:
			return doExport(opt, false)
		case len(a) == 1 && a[0] == "--yaml":
			return doExport(opt, true)
		}
		return usage("todo export [--yaml]")

	case "tui":
		saved, err := tui.Run(opt.Path)
		if err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		if saved {
			ui.OK("saved")
		}
		return 0
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Writer(), `todo - todo lists in your terminal

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  lists                          Show all lists
  new <name...>                  Create a list
  rename <list> <name...>        Rename a list
  rmlist <list>                  Delete a list
  show <list>                    Show the todos of a list
  add <list> <title...>          Add a todo to a list
  done <list> <todo> [true|false]
                                 Toggle a todo, or set it explicitly
  rm <list> <todo>               Delete a todo
  all <list>                     Complete every todo of a list
  export [--yaml]                Print the whole store as JSON (or YAML)
  tui                            Interactive mode

Lists and todos are addressed by 1-based index as shown by ` + "`todo lists`" + ` and ` + "`todo show`" + `.
The store lives in ./todos.json unless TODO_FILE is set.

Examples:
  todo new Groceries
  todo add 1 Buy milk
  todo done 1 1
  todo show 1
`)
}

// -------------- argument helpers ----------------

func usage(line string) int {
	ui.Fail("usage: " + line)
	return 2
}

// userIndex converts a 1-based argument to a store position. Out-of-range
// numbers pass through; the todo operations report them as not found.
func userIndex(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number: %s", errUsage, raw)
	}
	return n - 1, nil
}

func userIndexes(rawList, rawTodo string) (int, int, error) {
	li, err := userIndex(rawList)
	if err != nil {
		return 0, 0, err
	}
	ti, err := userIndex(rawTodo)
	if err != nil {
		return 0, 0, err
	}
	return li, ti, nil
}

// -------------- subcommand impls ----------------

// mutate loads the store, applies op and saves the result. Validation and
// lookup failures exit with 2, I/O failures with 1.
func mutate(opt Options, okMsg string, op func(model.Store) (model.Store, error)) int {
	s, err := jsonstore.Load(opt.Path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	next, err := op(s)
	if err != nil {
		ui.Fail(err.Error())
		if errors.Is(err, todo.ErrNotFound) {
			ui.Hint("run `todo lists` or `todo show <list>` to see valid indexes")
		}
		return 2
	}
	if err := jsonstore.Save(opt.Path, next); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(okMsg)
	return 0
}

func doDone(opt Options, a []string) int {
	const line = "todo done <list> <todo> [true|false]"
	if len(a) != 2 && len(a) != 3 {
		return usage(line)
	}
	li, ti, err := userIndexes(a[0], a[1])
	if err != nil {
		return usage(line)
	}
	explicit := len(a) == 3
	if explicit && a[2] != "true" && a[2] != "false" {
		return usage(line)
	}

	return mutate(opt, "updated", func(s model.Store) (model.Store, error) {
		completed := true
		if explicit {
			completed = todo.ParseCompleted(a[2])
		} else if l, err := todo.List(s, li); err == nil && ti >= 0 && ti < len(l.Todos) {
			completed = !l.Todos[ti].Completed
		}
		return todo.SetTodoCompleted(s, li, ti, completed)
	})
}

func doExport(opt Options, yaml bool) int {
	s, err := jsonstore.Load(opt.Path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if yaml {
		err = jsonstore.ExportYAML(ui.Writer(), s)
	} else {
		var b []byte
		if b, err = jsonstore.Encode(s); err == nil {
			_, err = fmt.Fprintln(ui.Writer(), string(b))
		}
	}
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	return 0
}

func doLists(opt Options) int {
	s, err := jsonstore.Load(opt.Path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	t := ui.Current()

	complete := 0
	for _, l := range s.Lists {
		if todo.IsListComplete(l) {
			complete++
		}
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Lists"),
		ui.C(t.Success, t.SymDone), complete,
		ui.C(t.Pending, t.SymPending), len(s.Lists)-complete,
		ui.C(t.Accent, "Total"), len(s.Lists),
	)

	lines := []string{header, ""}
	shown := todo.DisplayLists(s)
	if len(shown) == 0 {
		lines = append(lines, ui.C(t.Muted, "no lists"))
	}
	for _, il := range shown {
		done, pending := il.List.Stats()
		box, color := t.BoxUnchecked, t.Muted
		if todo.IsListComplete(il.List) {
			box, color = t.BoxChecked, t.Success
		}
		lines = append(lines, fmt.Sprintf("%s %s %s  %s",
			ui.C(dim, fmt.Sprintf("%2d.", il.Index+1)),
			ui.C(color, box),
			ui.Truncate(il.List.Name, 60),
			ui.C(t.Muted, fmt.Sprintf("%d/%d", pending, done+pending)),
		))
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: create one with `todo new Groceries`"))
	ui.Panel(lines)
	return 0
}

func doShow(opt Options, li int) int {
	s, err := jsonstore.Load(opt.Path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	l, err := todo.List(s, li)
	if err != nil {
		ui.Fail(err.Error())
		ui.Hint("run `todo lists` to see valid indexes")
		return 2
	}
	t := ui.Current()

	d, p := l.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, ui.Truncate(l.Name, 60)),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(l.Todos),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)), ""}
	if opt.Group {
		lines = append(lines, groupLines(todo.DisplayTodos(l))...)
	} else {
		lines = append(lines, flatLines(todo.DisplayTodos(l))...)
	}
	lines = append(lines, "", ui.C(t.Muted, fmt.Sprintf("Tip: add with `todo add %d \"Buy milk\"`", li+1)))
	ui.Panel(lines)
	return 0
}

// -------------- rendering helpers --------------

const dim = "\033[2m"

func flatLines(todos []todo.IndexedTodo) []string {
	t := ui.Current()
	if len(todos) == 0 {
		return []string{ui.C(t.Muted, "no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, it := range todos {
		box, color := t.BoxUnchecked, t.Muted
		if it.Todo.Completed {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(dim, fmt.Sprintf("%2d.", it.Index+1)), ui.C(color, box), ui.Truncate(it.Todo.Name, 80)))
	}
	return out
}

func groupLines(todos []todo.IndexedTodo) []string {
	t := ui.Current()
	var pend, done []todo.IndexedTodo
	for _, it := range todos {
		if it.Todo.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	section := func(title string, items []todo.IndexedTodo) []string {
		lines := []string{ui.C(t.Accent, title)}
		if len(items) == 0 {
			return append(lines, ui.C(t.Muted, "(none)"))
		}
		return append(lines, flatLines(items)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

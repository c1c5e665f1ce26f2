package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/Makepad-fr/eggventory/internal/tui"
	"github.com/Makepad-fr/eggventory/internal/ui"
)

type listCmd struct {
	app   *app
	group bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print the whole inventory" }
func (*listCmd) Usage() string {
	return `list [-group]

  Prints every stock type and its stocks in insertion order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.group, "group", false, "one panel per stock type")
}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, st := c.app.load()
	if st != subcommands.ExitSuccess {
		return st
	}
	if !c.group && !c.app.opt.Group {
		ui.Display(l)
		return subcommands.ExitSuccess
	}
	for _, t := range l.StockTypes() {
		ui.Panel(ui.StockTypeLines(t))
	}
	return subcommands.ExitSuccess
}

type findCmd struct {
	app  *app
	code bool
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "show one stock type, or the stock with a code" }
func (*findCmd) Usage() string {
	return `find <stocktype>
find -code <code>

  Shows a stock type and its stocks, or with -code the first stock with that
  code and the stock type holding it.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.code, "code", false, "look up a stock by code instead of a stock type by name")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "find: expected exactly one name or code")
	}
	key := f.Arg(0)
	l, st := c.app.load()
	if st != subcommands.ExitSuccess {
		return st
	}

	if c.code {
		s, t, ok := l.FindStock(key)
		if !ok {
			ui.Fail("no stock with code " + key)
			return subcommands.ExitFailure
		}
		ui.Panel([]string{
			ui.C(ui.Current().Accent, t.Name()),
			fmt.Sprintf("%s x%d %s", s.Code(), s.Quantity(), s.Description()),
		})
		return subcommands.ExitSuccess
	}

	t, ok := l.FindStockType(key)
	if !ok {
		ui.Fail("no stock type named " + key)
		return subcommands.ExitFailure
	}
	ui.Panel(ui.StockTypeLines(t))
	return subcommands.ExitSuccess
}

type totalCmd struct {
	app *app
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "show stock type, stock and quantity totals" }
func (*totalCmd) Usage() string {
	return `total

  Shows how many stock types and stocks there are, the total quantity, and
  each stock type's share of it.
`
}
func (*totalCmd) SetFlags(*flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, st := c.app.load()
	if st != subcommands.ExitSuccess {
		return st
	}
	ui.Panel(ui.Totals(l))
	return subcommands.ExitSuccess
}

type reportCmd struct {
	app   *app
	raw   bool
	width int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the inventory as a markdown report" }
func (*reportCmd) Usage() string {
	return `report [-raw] [-width <n>]

  Renders one table per stock type. With -raw the markdown source is printed.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print the markdown source")
	f.IntVar(&c.width, "width", 80, "word wrap width, 0 disables wrapping")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, st := c.app.load()
	if st != subcommands.ExitSuccess {
		return st
	}
	md := ui.Markdown(l)
	if c.raw {
		fmt.Fprint(ui.Out, md)
		return subcommands.ExitSuccess
	}
	out, err := ui.RenderMarkdown(md, c.width)
	if err != nil {
		ui.Fail("report: " + err.Error())
		return subcommands.ExitFailure
	}
	fmt.Fprint(ui.Out, out)
	return subcommands.ExitSuccess
}

type browseCmd struct {
	app *app
}

func (*browseCmd) Name() string     { return "browse" }
func (*browseCmd) Synopsis() string { return "browse and edit stocks interactively" }
func (*browseCmd) Usage() string {
	return `browse

  Opens an interactive list. Changes are saved on quit.
`
}
func (*browseCmd) SetFlags(*flag.FlagSet) {}

func (c *browseCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, st := c.app.load()
	if st != subcommands.ExitSuccess {
		return st
	}
	changed, err := tui.Run(l)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return subcommands.ExitFailure
	}
	if !changed {
		return subcommands.ExitSuccess
	}
	if st := c.app.save(l); st != subcommands.ExitSuccess {
		return st
	}
	ui.OK("saved")
	return subcommands.ExitSuccess
}

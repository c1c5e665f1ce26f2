package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/Makepad-fr/eggventory/internal/model"
	"github.com/Makepad-fr/eggventory/internal/recur"
	"github.com/Makepad-fr/eggventory/internal/ui"
)

// parseQuantity accepts non-negative integers only.
func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("quantity must not be negative: %d", n)
	}
	return n, nil
}

// addStock files a stock and tells the user when it landed in the fallback stock type.
func addStock(l *model.StockList, typeName, code string, qty int, desc string) bool {
	st, ok := l.AddStock(typeName, code, qty, desc)
	if !ok {
		ui.Fail("no stock type to file the stock under")
		return false
	}
	if st.Name() != typeName {
		ui.Warn(fmt.Sprintf("no stock type %q, filed %s under %s", typeName, code, st.Name()))
	}
	return true
}

type addCmd struct {
	app *app
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a stock type or a stock" }
func (*addCmd) Usage() string {
	return `add stocktype <name>
add stock <stocktype> <code> <quantity> <description...>

  Adds an empty stock type, or a stock under an existing stock type.
  A stock filed under an unknown stock type goes to Uncategorised.
`
}
func (*addCmd) SetFlags(*flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := f.Args()
	if len(a) == 0 {
		return usageError(f, "add: missing stock or stocktype")
	}
	switch a[0] {
	case "stocktype":
		if len(a) < 2 {
			return usageError(f, "usage: add stocktype <name>")
		}
		name := strings.TrimSpace(strings.Join(a[1:], " "))
		if name == "" {
			return usageError(f, "add stocktype: empty name")
		}
		l, st := c.app.load()
		if st != subcommands.ExitSuccess {
			return st
		}
		l.AddStockType(name)
		if st := c.app.save(l); st != subcommands.ExitSuccess {
			return st
		}
		ui.OK("added stock type " + name)
		return subcommands.ExitSuccess

	case "stock":
		if len(a) < 4 {
			return usageError(f, "usage: add stock <stocktype> <code> <quantity> <description...>")
		}
		qty, err := parseQuantity(a[3])
		if err != nil {
			return usageError(f, "add stock: "+err.Error())
		}
		l, st := c.app.load()
		if st != subcommands.ExitSuccess {
			return st
		}
		if !addStock(l, a[1], a[2], qty, strings.Join(a[4:], " ")) {
			return subcommands.ExitFailure
		}
		if st := c.app.save(l); st != subcommands.ExitSuccess {
			return st
		}
		ui.OK("added stock " + a[2])
		return subcommands.ExitSuccess
	}
	return usageError(f, "add: unknown kind: "+a[0])
}

type deleteCmd struct {
	app *app
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a stock or a stock type with all its stocks" }
func (*deleteCmd) Usage() string {
	return `delete stock <code>
delete stocktype <name>

  Deletes the first stock with the code, or the first stock type with the
  name together with every stock it holds.
`
}
func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := f.Args()
	if len(a) < 2 {
		return usageError(f, "usage: delete <stock|stocktype> <code|name>")
	}
	kind, key := a[0], strings.Join(a[1:], " ")
	if kind != "stock" && kind != "stocktype" {
		return usageError(f, "delete: unknown kind: "+kind)
	}

	l, st := c.app.load()
	if st != subcommands.ExitSuccess {
		return st
	}

	var msg string
	if kind == "stock" {
		s, ok := l.DeleteStock(key)
		if !ok {
			ui.Fail("no stock with code " + key)
			return subcommands.ExitFailure
		}
		msg = fmt.Sprintf("deleted stock %s (x%d %s)", s.Code(), s.Quantity(), s.Description())
	} else {
		t, ok := l.DeleteStockType(key)
		if !ok {
			ui.Fail("no stock type named " + key)
			return subcommands.ExitFailure
		}
		msg = fmt.Sprintf("deleted stock type %s and its %d stocks", t.Name(), t.Len())
		if t.Name() == model.DefaultStockType {
			c.app.log.Warn("default stock type deleted", zap.String("name", t.Name()))
		}
	}

	if st := c.app.save(l); st != subcommands.ExitSuccess {
		return st
	}
	ui.OK(msg)
	return subcommands.ExitSuccess
}

type recurCmd struct {
	app *app
}

func (*recurCmd) Name() string     { return "recur" }
func (*recurCmd) Synopsis() string { return "add a stock once per occurrence of a recurrence" }
func (*recurCmd) Usage() string {
	return `recur <stocktype> <code> <quantity> <interval-days> <count> "<dd/MM/yyyy HHmm>" <description...>

  Adds <count> stocks, the first one <interval-days> after the start date and
  each following one <interval-days> later. Codes are suffixed with the date.
  <count> is at most 1000.

  Example:
    recur Eggs EGG 12 7 4 "01/03/2025 0900" weekly delivery
`
}
func (*recurCmd) SetFlags(*flag.FlagSet) {}

func (c *recurCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := f.Args()
	if len(a) < 6 {
		return usageError(f, "recur: missing arguments")
	}
	qty, err := parseQuantity(a[2])
	if err != nil {
		return usageError(f, "recur: "+err.Error())
	}
	interval, err := strconv.Atoi(a[3])
	if err != nil {
		return usageError(f, "recur: interval not a number: "+a[3])
	}
	count, err := strconv.Atoi(a[4])
	if err != nil {
		return usageError(f, "recur: count not a number: "+a[4])
	}
	start, err := recur.ParseStart(a[5])
	if err != nil {
		return usageError(f, "recur: "+err.Error())
	}
	dates, err := recur.Rule{Start: start, IntervalDays: interval, Count: count}.Expand()
	if err != nil {
		return usageError(f, "recur: "+err.Error())
	}

	l, st := c.app.load()
	if st != subcommands.ExitSuccess {
		return st
	}
	desc := strings.Join(a[6:], " ")
	for _, d := range dates {
		code := a[1] + "-" + d.Format("20060102-1504")
		full := strings.TrimSpace(desc + " (due " + recur.Format(d) + ")")
		if !addStock(l, a[0], code, qty, full) {
			return subcommands.ExitFailure
		}
	}
	if st := c.app.save(l); st != subcommands.ExitSuccess {
		return st
	}
	ui.OK(fmt.Sprintf("added %d recurring stocks", len(dates)))
	return subcommands.ExitSuccess
}

// Package cli dispatches subcommands onto the stock list.
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/Makepad-fr/eggventory/internal/model"
	"github.com/Makepad-fr/eggventory/internal/store/textstore"
	"github.com/Makepad-fr/eggventory/internal/ui"
)

const appName = "eggventory"

// Options tune behavior from root flags and config.
type Options struct {
	DataFile string // empty means eggventory.txt in the working directory
	Group    bool   // list grouped by stock type
	Logger   *zap.Logger
}

// app is shared by every subcommand of one run.
type app struct {
	store *textstore.Store
	log   *zap.Logger
	opt   Options
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	store, err := textstore.New(opt.DataFile, log)
	if err != nil {
		ui.Fail("store: " + err.Error())
		return int(subcommands.ExitFailure)
	}
	a := &app{store: store, log: log.Named("cli"), opt: opt}

	top := flag.NewFlagSet(appName, flag.ContinueOnError)
	top.SetOutput(ui.Err)
	if err := top.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}

	cdr := subcommands.NewCommander(top, appName)
	cdr.Output = ui.Out
	cdr.Error = ui.Err
	register(cdr, a)

	return int(cdr.Execute(ctx))
}

// register the subcommands.
func register(cdr *subcommands.Commander, a *app) {
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")

	cdr.Register(&addCmd{app: a}, "inventory")
	cdr.Register(&deleteCmd{app: a}, "inventory")
	cdr.Register(&recurCmd{app: a}, "inventory")

	cdr.Register(&listCmd{app: a}, "views")
	cdr.Register(&findCmd{app: a}, "views")
	cdr.Register(&totalCmd{app: a}, "views")
	cdr.Register(&reportCmd{app: a}, "views")
	cdr.Register(&browseCmd{app: a}, "views")
}

// load reads the stock list, reporting failures to the user.
func (a *app) load() (*model.StockList, subcommands.ExitStatus) {
	l, err := a.store.Load()
	if err != nil {
		a.log.Error("load failed", zap.String("path", a.store.Path()), zap.Error(err))
		ui.Fail("load: " + err.Error())
		return nil, subcommands.ExitFailure
	}
	a.log.Debug("loaded",
		zap.String("path", a.store.Path()),
		zap.Int("stock_types", l.StockTypeCount()),
		zap.Int("stocks", l.StockCount()))
	return l, subcommands.ExitSuccess
}

// save writes l back. A failure leaves l untouched in memory.
func (a *app) save(l *model.StockList) subcommands.ExitStatus {
	if err := a.store.Save(l); err != nil {
		a.log.Error("save failed", zap.String("path", a.store.Path()), zap.Error(err))
		ui.Fail("save: " + err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func usageError(f *flag.FlagSet, msg string) subcommands.ExitStatus {
	ui.Fail(msg)
	fmt.Fprintln(ui.Err)
	f.Usage()
	return subcommands.ExitUsageError
}

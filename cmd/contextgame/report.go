package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/pflag"

	"github.com/nhle/context-game/internal/logging"
	"github.com/nhle/context-game/internal/report"
	"github.com/nhle/context-game/internal/session"
)

// runReport scores one configuration and writes the report JSON to w.
// With --order-check every listed id must be accepted, in order.
func runReport(args []string, w io.Writer) error {
	var opts options
	var items []string
	var orderCheck bool

	flagSet := pflag.NewFlagSet("contextgame report", pflag.ContinueOnError)
	opts.addFlags(flagSet)
	flagSet.StringSliceVar(&items, "items", nil, "comma separated item ids, in window order")
	flagSet.BoolVar(&orderCheck, "order-check", false, "fail unless every item is added in the given order")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	cfg, err := opts.load(flagSet)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	s := session.New(cat, logger)
	if cfg.Session.DefaultTask != "" {
		if err := s.SetTask(cfg.Session.DefaultTask); err != nil {
			return err
		}
	}

	for _, id := range items {
		if !s.AddByID(id) {
			logger.Warn("item skipped", "item_id", id, "task_id", s.Task().ID)
		}
	}
	if orderCheck && !slices.Equal(s.IDs(), items) {
		return fmt.Errorf("order check: window is %v, want %v", s.IDs(), items)
	}

	r, err := report.Build(s.Snapshot())
	if err != nil {
		return err
	}
	logger.Debug("report built", slog.String("fingerprint", r.Fingerprint))

	return report.Write(w, r)
}

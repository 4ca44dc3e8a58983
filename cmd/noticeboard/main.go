package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"noticeboard/internal/board"
	"noticeboard/internal/config"
	"noticeboard/internal/eventbus"
	"noticeboard/internal/ui"
	"noticeboard/pkg/logx"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "./noticeboard.yaml", "path to config file (yaml or json)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cm := config.NewManager(cfgPath)
	cfg, err := cm.Load()
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	logsvc, log := logx.New(cfg.LogSettings())
	defer logsvc.Close()
	cm.SetLogger(log)

	boardCfg, err := cfg.BoardSettings()
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
	notices, err := cfg.BoardNotices()
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	bus := eventbus.New()
	surface := ui.NewSurface()
	mgr := board.New(boardCfg, notices, surface, board.NewScheduler(),
		log.With(logx.String("component", "board")), bus)

	// Mirror warn-and-above log records into the activity log.
	logsvc.SetBoardSink(func(level, msg string) {
		mgr.AppendLog(msg, importanceForLevel(level))
	})

	// Trace board events for operators tailing the log file.
	events, unsub := bus.Subscribe(16)
	defer unsub()
	go func() {
		for e := range events {
			log.Debug("board event", logx.String("type", e.Type))
		}
	}()

	// Config hot reload: board settings and logging sinks apply live. The
	// notice list is static for the life of the process.
	go func() { _ = cm.Watch(ctx) }()
	updates := cm.Subscribe(4)
	defer cm.Unsubscribe(updates)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case c, ok := <-updates:
				if !ok {
					return
				}
				applyConfig(c, cfg, mgr, logsvc, log)
			}
		}
	}()

	prog := ui.NewProgram(surface, mgr.Init)
	go func() {
		<-ctx.Done()
		prog.Quit()
	}()

	if _, err := prog.Run(); err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
}

func applyConfig(c, initial *config.Config, mgr *board.Manager, logsvc *logx.Service, log logx.Logger) {
	bc, err := c.BoardSettings()
	if err != nil {
		log.Warn("reload skipped", logx.Err(err))
		return
	}
	mgr.Apply(bc)
	logsvc.Apply(c.LogSettings())

	if len(c.Notices) != len(initial.Notices) {
		log.Warn("notice list changed on disk; restart to apply")
	}
	log.Info("config reloaded",
		logx.Duration("display_duration", bc.DisplayDuration),
		logx.Int("max_log_entries", bc.MaxLogEntries))
}

func importanceForLevel(level string) board.Importance {
	switch level {
	case "error", "fatal", "panic":
		return board.ImportanceAlert
	case "warn":
		return board.ImportanceWarning
	default:
		return board.ImportanceInfo
	}
}

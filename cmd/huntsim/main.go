package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eqforge/hunter/internal/combat"
	"github.com/eqforge/hunter/internal/config"
	"github.com/eqforge/hunter/internal/journal"
	"github.com/eqforge/hunter/internal/model"
	"github.com/eqforge/hunter/internal/observer"
	"github.com/eqforge/hunter/internal/sim"
	"github.com/eqforge/hunter/internal/world"
)

const ConfigPath = "config/hunter.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("HUNTER_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadHunter(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
		combat.EnableDebugLogging(true)
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	slog.Info("huntsim starting", "tick_interval", cfg.TickInterval())

	var jnl *journal.Journal
	if cfg.Journal.Enabled {
		if err := journal.RunMigrations(ctx, cfg.Journal.DSN()); err != nil {
			return fmt.Errorf("running journal migrations: %w", err)
		}
		jnl, err = journal.New(ctx, cfg.Journal.DSN())
		if err != nil {
			return fmt.Errorf("connecting to journal: %w", err)
		}
		defer jnl.Close()
		slog.Info("hunt journal connected")
	}

	w := world.New()
	zone := sim.New(sim.DefaultConfig(time.Now().UnixNano()), w, slog.Default())

	var sink combat.CommandSink = zone
	if jnl != nil {
		sink = &journalingSink{CommandSink: zone, jnl: jnl, ctx: ctx}
	}

	ctrl := combat.NewController(w, sink, zone)
	zone.Attach(ctrl)
	applySettings(ctrl.Settings(), cfg)

	ctrl.SetKillHook(func(e model.EntitySnapshot, con *model.ConsiderData) {
		slog.Info("target killed", "name", e.Name, "id", e.ID)
		if jnl == nil {
			return
		}
		var conLevel, faction uint32
		if con != nil {
			conLevel, faction = con.ConLevel, con.Faction
		}
		if err := jnl.RecordKill(ctx, e.Name, e.ID, conLevel, faction); err != nil {
			slog.Warn("journal write failed", "err", err)
		}
	})

	ctrl.Enable()
	if err := ctrl.SetAutoHunting(true); err != nil {
		return fmt.Errorf("enabling auto-hunting: %w", err)
	}

	var statusMu sync.Mutex
	var status observer.Status

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(cfg.TickInterval())
		defer ticker.Stop()
		var tick uint64
		for {
			select {
			case <-gctx.Done():
				return nil
			case now := <-ticker.C:
				zone.Tick(now)
				ctrl.Tick()
				tick++

				if !zone.PlayerAlive() {
					slog.Error("player died, stopping")
					return fmt.Errorf("player died on tick %d", tick)
				}

				target := ctrl.Target()
				statusMu.Lock()
				status = observer.Status{
					State:        ctrl.State().String(),
					Enabled:      ctrl.Enabled(),
					AutoHunting:  ctrl.AutoHunting(),
					HPPercent:    ctrl.Vitals().HPPercent,
					ManaPercent:  ctrl.Vitals().ManaPercent,
					TargetID:     target.EntityID,
					TargetName:   target.Name,
					TrackedCount: ctrl.Catalog().Len(),
					Tick:         tick,
				}
				statusMu.Unlock()
			}
		}
	})

	if cfg.ObserverAddr != "" {
		srv := observer.NewServer(func() observer.Status {
			statusMu.Lock()
			defer statusMu.Unlock()
			return status
		}, slog.Default())
		g.Go(func() error {
			if err := srv.ListenAndServe(gctx, cfg.ObserverAddr); err != nil {
				return fmt.Errorf("observer server: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return nil
}

func applySettings(s *combat.Settings, cfg config.Hunter) {
	s.AssistRange = cfg.AssistRange
	s.AggroRadius = cfg.AggroRadius
	s.CombatRange = cfg.CombatRange
	s.SpellRange = cfg.SpellRange
	s.FleeHPThreshold = cfg.FleeHPThreshold
	s.HuntRadius = cfg.HuntRadius
	s.RestHPThreshold = cfg.RestHPThreshold
	s.RestManaThreshold = cfg.RestManaThreshold
	s.AutoLoot = cfg.AutoLoot
	s.AttackDelay = cfg.AttackDelay()
}

// journalingSink forwards every command and records looted slots.
type journalingSink struct {
	combat.CommandSink
	jnl *journal.Journal
	ctx context.Context
}

func (s *journalingSink) LootItem(corpseID uint16, slot uint32, autoLoot bool) {
	s.CommandSink.LootItem(corpseID, slot, autoLoot)
	if err := s.jnl.RecordLoot(s.ctx, corpseID, slot); err != nil {
		slog.Warn("journal write failed", "err", err)
	}
}

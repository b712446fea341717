package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/breathpace/internal/audio"
	"github.com/akyairhashvil/breathpace/internal/breath"
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/preset"
	"github.com/akyairhashvil/breathpace/internal/tui"
	"github.com/akyairhashvil/breathpace/internal/util"
)

type plainRun struct {
	out      io.Writer
	ticks    <-chan time.Time
	catalog  *preset.Catalog
	store    tui.HistoryStore
	notifier *audio.Notifier
	locale   models.Locale
	now      func() time.Time
	opts     cliOptions
}

// plannedCycles resolves the session length from flags: minutes win over
// cycles, and the recommendation fills in when neither is given.
func plannedCycles(p models.Preset, opts cliOptions) int {
	switch {
	case opts.minutes > 0:
		return breath.CyclesFromMinutes(p, util.Clamp(opts.minutes, config.MinSessionMinutes, config.MaxSessionMinutes))
	case opts.cycles > 0:
		return util.Clamp(opts.cycles, config.MinCycles, config.MaxCycles)
	default:
		return breath.RecommendedCycles(p)
	}
}

func presetIDs(c *preset.Catalog) string {
	var ids []string
	for _, p := range c.List() {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, ", ")
}

// runPlain drives one session from ticks on the calling goroutine and
// prints a line per phase and per second.
func runPlain(ctx context.Context, r plainRun) error {
	id := r.opts.presetID
	if id == "" {
		id = r.catalog.List()[0].ID
	}
	p, ok := r.catalog.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %s)", id, presetIDs(r.catalog))
	}
	cycles := plannedCycles(*p, r.opts)
	loc := r.locale

	clock := breath.NewManualClock()
	timer := breath.NewTimer(clock)
	defer timer.Destroy()

	timer.OnPhaseChange(func(phase models.Phase) {
		r.notifier.PhaseChange(phase)
		c := timer.Context()
		fmt.Fprintf(r.out, "%s  %s  %s\n", tui.FormatCycle(loc, c),
			i18n.Translate(loc, "ui.phase."+string(phase)), tui.FormatSeconds(loc, p.PhaseSeconds(phase)))
	})
	timer.OnTick(func() {
		r.notifier.Tick()
		fmt.Fprintf(r.out, "  %d\n", timer.Context().RemainingSeconds)
	})

	fmt.Fprintf(r.out, "%s %s · %d %s · %s\n", i18n.PresetName(loc, p), preset.Pattern(*p), cycles,
		i18n.Translate(loc, "ui.cycles"), tui.FormatSessionLength(loc, breath.DurationFromCycles(*p, cycles)))

	started := r.now()
	active := 0
	timer.Start(p, cycles)

	for {
		select {
		case <-ctx.Done():
			if active > 0 {
				c := timer.Context()
				r.record(models.Session{
					PresetID: p.ID, PlannedCycles: cycles, CompletedCycles: c.CurrentCycle,
					Status: models.SessionAbandoned, StartedAt: started, EndedAt: r.now(), ActiveSeconds: active,
				})
			}
			return nil
		case <-r.ticks:
			clock.Advance(config.TickInterval)
			active++
			if timer.Context().State == models.TimerCompleted {
				fmt.Fprintln(r.out, i18n.Translate(loc, "ui.sessionComplete"))
				r.record(models.Session{
					PresetID: p.ID, PlannedCycles: cycles, CompletedCycles: cycles,
					Status: models.SessionCompleted, StartedAt: started, EndedAt: r.now(), ActiveSeconds: active,
				})
				return nil
			}
		}
	}
}

// record stores a session; failures only reach the log.
func (r plainRun) record(s models.Session) {
	if r.store == nil {
		return
	}
	// The run context may already be cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	util.LogError("record session", r.store.RecordSession(ctx, s))
}

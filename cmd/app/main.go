package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/breathpace/internal/audio"
	"github.com/akyairhashvil/breathpace/internal/buildinfo"
	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/database"
	"github.com/akyairhashvil/breathpace/internal/i18n"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/akyairhashvil/breathpace/internal/prefs"
	"github.com/akyairhashvil/breathpace/internal/preset"
	"github.com/akyairhashvil/breathpace/internal/tui"
	"github.com/akyairhashvil/breathpace/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type cliOptions struct {
	presetID string
	cycles   int
	minutes  int
	plain    bool
	version  bool
}

func parseFlags(args []string, out io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.presetID, "preset", "", "preset id for plain mode")
	fs.IntVar(&opts.cycles, "cycles", 0, "number of cycles for plain mode (default: recommended)")
	fs.IntVar(&opts.minutes, "minutes", 0, "session length in minutes for plain mode, overrides -cycles")
	fs.BoolVar(&opts.plain, "plain", false, "print the countdown as text even on a terminal")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Printf("%s %s\n", config.DisplayName, buildinfo.Label())
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataDir := util.DataDir(config.AppName)
	if err := util.EnsureDir(dataDir); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		return err
	}
	defer db.Close()

	settings := prefs.New(db)
	settings.Init(ctx, i18n.EnvLanguageTag())

	presetsPath := filepath.Join(util.ConfigDir(config.AppName), config.PresetsFileName)
	if _, err := preset.EnsureFile(presetsPath); err != nil {
		fmt.Fprintf(os.Stderr, "presets file: %v\n", err)
	}
	catalog := loadCatalog(presetsPath)

	notifier := audio.NewNotifier(os.Stderr)
	notifier.SetMuted(settings.Muted())
	notifier.SetTickCue(settings.TickCue())

	if !opts.plain && term.IsTerminal(int(os.Stdout.Fd())) {
		return runTUI(ctx, tuiDeps{
			db:          db,
			prefs:       settings,
			notifier:    notifier,
			catalog:     catalog,
			dataDir:     dataDir,
			presetsPath: presetsPath,
		})
	}

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()
	return runPlain(ctx, plainRun{
		out:      os.Stdout,
		ticks:    ticker.C,
		catalog:  catalog,
		store:    db,
		notifier: notifier,
		locale:   settings.Locale(),
		now:      time.Now,
		opts:     opts,
	})
}

// loadCatalog merges user presets into the built-ins. A broken presets
// file is reported and ignored.
func loadCatalog(path string) *preset.Catalog {
	catalog := preset.Default()
	custom, err := preset.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", path, err)
		return catalog
	}
	merged, err := catalog.WithCustom(custom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s: %v\n", path, err)
		return catalog
	}
	return merged
}

func describeDB(ctx context.Context, db *database.Database) string {
	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return fmt.Sprintf("database %s: schema version unknown: %v", db.Path(), err)
	}
	return fmt.Sprintf("database %s at schema v%d", db.Path(), version)
}

type tuiDeps struct {
	db          *database.Database
	prefs       *prefs.Store
	notifier    *audio.Notifier
	catalog     *preset.Catalog
	dataDir     string
	presetsPath string
}

func runTUI(ctx context.Context, d tuiDeps) error {
	if util.DebugEnabled(config.EnvDebug) {
		f, err := tea.LogToFile(filepath.Join(d.dataDir, config.DebugLogName), "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		log.Print(describeDB(ctx, d.db))
	} else {
		util.DiscardLogs()
	}

	model := tui.NewModel(ctx, tui.Options{
		Store:      d.db,
		Prefs:      d.prefs,
		Notifier:   d.notifier,
		Catalog:    d.catalog,
		ReportsDir: util.ReportsDir(config.AppName),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if err := util.EnsureDir(filepath.Dir(d.presetsPath)); err == nil {
		err = preset.Watch(ctx, d.presetsPath, func(presets []models.Preset, err error) {
			p.Send(tui.PresetsReloadedMsg{Presets: presets, Err: err})
		})
		util.LogError("watch presets", err)
	} else {
		util.LogError("create config dir", err)
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

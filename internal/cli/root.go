package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vbp1/fixturegen/internal/config"
	"github.com/vbp1/fixturegen/internal/fixture"
	"github.com/vbp1/fixturegen/internal/lock"
	"github.com/vbp1/fixturegen/internal/log"
	"github.com/vbp1/fixturegen/internal/progress"
	"github.com/vbp1/fixturegen/internal/util/disk"
	fsutil "github.com/vbp1/fixturegen/internal/util/fs"
)

// blockSize approximates per-entry filesystem overhead for the space check.
const blockSize = 4096

// NewRootCmd builds the command tree; running it without a subcommand regenerates the fixture project.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:           "fixturegen",
		Short:         "Regenerate the Collapse Files Plugin integration test project",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, cfgFile)
			if err != nil {
				return err
			}
			return build(cmd, cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./fixturegen.yaml if present)")
	pf.String("root", fixture.DefaultRoot, "Fixture project directory, removed and recreated on every run")
	pf.String("preset", fixture.PresetComprehensive, fmt.Sprintf("Built-in scenario set %v", fixture.PresetNames()))
	pf.Bool("verbose", false, "Verbose output")
	pf.Bool("debug", false, "Enable debug trace output")

	f := cmd.Flags()
	f.String("progress", string(progress.ModeAuto), "Progress display mode: auto|bar|plain|none")
	f.Int("progress-interval", 1, "Seconds between updates in plain mode")
	f.Bool("skip-space-check", false, "Do not check free disk space before building")

	cmd.AddCommand(newPlanCmd(&cfgFile), newVerifyCmd(&cfgFile))
	return cmd
}

// Execute parses flags and runs the root command.
func Execute() error { return NewRootCmd().Execute() }

func load(cmd *cobra.Command, cfgFile string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log.Setup(cmd.ErrOrStderr(), cfg.Debug, cfg.Verbose)
	if cfg.ConfigFile != "" {
		slog.Info("using config file", "path", cfg.ConfigFile)
	}
	return cfg, nil
}

func build(cmd *cobra.Command, cfg *config.Config) error {
	fsys, name, err := fsutil.OpenRoot(cfg.Root)
	if err != nil {
		return err
	}

	l, err := lock.New(cfg.Root)
	if err != nil {
		return err
	}
	if err := l.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := l.Unlock(); err != nil {
			slog.Warn("unlock", "path", l.Path(), "err", err)
		}
	}()

	expect := fixture.Expect(cfg.Scenarios)
	entries := int64(expect.Dirs + expect.Files)
	if !cfg.SkipSpaceCheck {
		need := uint64(expect.Bytes) + uint64(entries)*blockSize
		if err := disk.EnsureSpace(map[string]uint64{cfg.Root: need}); err != nil {
			return err
		}
	}

	mode, err := progress.ParseMode(cfg.Progress)
	if err != nil {
		return err
	}
	tracker := progress.New(mode, cfg.Verbose, "fixture", entries, cmd.ErrOrStderr(),
		time.Duration(cfg.ProgressInterval)*time.Second)

	b := fixture.NewBuilder(fsys, name, cfg.Scenarios)
	b.OnNode = func(fixture.Node) { tracker.Incr() }
	slog.Debug("starting build", "builder", b.String(), "preset", cfg.Preset)

	rep, err := b.Build()
	tracker.Finish(err == nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rep.Summary())
	return nil
}

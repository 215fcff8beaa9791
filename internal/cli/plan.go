package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vbp1/fixturegen/internal/fixture"
)

type plan struct {
	Root      string             `yaml:"root"`
	Preset    string             `yaml:"preset,omitempty"`
	Expect    fixture.Totals     `yaml:"expect"`
	Scenarios []fixture.Scenario `yaml:"scenarios"`
}

func newPlanCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the effective manifest and expected totals without touching the disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, *cfgFile)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer func() { _ = enc.Close() }()
			return enc.Encode(plan{
				Root:      cfg.Root,
				Preset:    cfg.Preset,
				Expect:    fixture.Expect(cfg.Scenarios),
				Scenarios: cfg.Scenarios,
			})
		},
	}
}

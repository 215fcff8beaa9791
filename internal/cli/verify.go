package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vbp1/fixturegen/internal/fixture"
	fsutil "github.com/vbp1/fixturegen/internal/util/fs"
)

func newVerifyCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check an existing fixture project matches the manifest exactly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, *cfgFile)
			if err != nil {
				return err
			}
			fsys, name, err := fsutil.OpenRoot(cfg.Root)
			if err != nil {
				return err
			}
			mm, err := fixture.Verify(fsys, name, cfg.Scenarios)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range mm {
				fmt.Fprintln(out, m)
			}
			if len(mm) > 0 {
				return fmt.Errorf("%s: %d mismatches", cfg.Root, len(mm))
			}
			fmt.Fprintf(out, "%s matches manifest\n", cfg.Root)
			return nil
		},
	}
}

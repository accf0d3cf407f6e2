package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/services/registry"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	configPath string
	output     io.Writer
}

func NewProfilesCmd(output io.Writer) *cobra.Command {
	pc := &ProfilesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List dataset profiles from a registry file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", "", "Path to the profile registry file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	reg, err := registry.NewRegistry(pc.configPath)
	if err != nil {
		return fmt.Errorf("open profile registry: %w", err)
	}

	profiles, err := reg.Profiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		fmt.Fprintln(pc.output, profile)
	}
	return nil
}

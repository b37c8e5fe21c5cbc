package main

import (
	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/config"
	"github.com/mirakui/gj/internal/log"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create the default configuration file",
		GroupID: GroupSetup,
		Args:    cobra.NoArgs,
		Long: `Write a commented default configuration to ~/.gj/config.toml.

Refuses to overwrite an existing file unless --force is given.`,
		Example: `  gj init      # create config if missing
  gj init -f   # overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.FromContext(cmd.Context())

			path, err := config.Init(force)
			if err != nil {
				return err
			}

			l.Printf("Created %s\n", path)
			l.Println("Register your repositories there, then create a worktree with 'gj new'.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

package main

import (
	"path/filepath"

	"github.com/agenthands/gitcat/pkg/repo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInitCommand(a *app) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty repository",
		Long:  "Create the repository directory with objects/, refs/ and a HEAD file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := a.v.GetString(cfgGitDir)

			res, err := repo.Init(dir, branch)
			if err != nil {
				return err
			}

			shown := dir
			if abs, err := filepath.Abs(dir); err == nil {
				shown = abs
			}
			a.log.Info("repository initialized",
				zap.String("dir", shown),
				zap.Bool("reinitialized", res.Reinitialized))

			if res.Reinitialized {
				cmd.Printf("Reinitialized existing git directory in %s\n", shown)
			} else {
				cmd.Printf("Initialized git directory in %s\n", shown)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "initial-branch", "b", repo.DefaultBranch, "branch HEAD points to")
	return cmd
}

package main

import (
	"github.com/agenthands/gitcat/pkg/cidutil"
	"github.com/agenthands/gitcat/pkg/core"
	"github.com/spf13/cobra"
)

func newCIDCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cid <hash>",
		Short: "Print the git-raw CIDv1 of a full object id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := core.ParseObjectID(args[0])
			if err != nil {
				return err
			}

			c, err := cidutil.NewVerifier().ObjectCID(id)
			if err != nil {
				return err
			}
			cmd.Println(c.String())
			return nil
		},
	}
}

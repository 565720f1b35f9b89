package main

import (
	"errors"
	"fmt"

	"github.com/agenthands/gitcat/pkg/core"
	"github.com/agenthands/gitcat/pkg/odb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errModeRequired = errors.New("one of -p, -t, -s or -e is required")

func newCatFileCommand(a *app) *cobra.Command {
	var pretty, showType, showSize, exists bool

	cmd := &cobra.Command{
		Use:   "cat-file (-p | -t | -s | -e) <hash>",
		Short: "Print the content, kind or size of an object",
		Long: `Print the content (-p), kind (-t) or payload size (-s) of the object named by
<hash>, or exit with status 1 if it does not exist (-e). Only blob content
can be printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !pretty && !showType && !showSize && !exists {
				return errModeRequired
			}

			id, err := core.ParseObjectID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := odb.Open(ctx, a.storeConfig(), a.log)
			if err != nil {
				return err
			}

			switch {
			case exists:
				ok, err := s.Has(ctx, id)
				if err != nil {
					return err
				}
				if !ok {
					return &exitError{code: 1, silent: true, err: fmt.Errorf("%w: %s", core.ErrObjectNotFound, id)}
				}
				return nil

			case showType, showSize:
				info, err := s.Stat(ctx, id)
				if err != nil {
					return err
				}
				if showType {
					cmd.Println(info.Kind)
				} else {
					cmd.Println(info.Size)
				}
				return nil

			default:
				if err := s.CatFile(ctx, id, cmd.OutOrStdout()); err != nil {
					a.log.Debug("cat-file failed", zap.Stringer("id", id), zap.Error(err))
					return err
				}
				return nil
			}
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&pretty, "pretty", "p", false, "print the object content")
	f.BoolVarP(&showType, "type", "t", false, "print the object kind")
	f.BoolVarP(&showSize, "size", "s", false, "print the object payload size")
	f.BoolVarP(&exists, "exists", "e", false, "exit with zero status if the object exists")
	cmd.MarkFlagsMutuallyExclusive("pretty", "type", "size", "exists")

	return cmd
}

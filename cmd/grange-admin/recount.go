package main

import (
	"fmt"
	"runtime"

	"github.com/mmdatafocus/grange_backend/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var syncOperationsCmd = &cobra.Command{
	Use:   "sync-operations",
	Short: "Upsert the operation registry and warm the operation id cache",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		n, err := store.Operations.Sync(ctx, models.OperationRegistry)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d operations registered\n", n)
		return nil
	},
}

var recountShedId int

var recountCmd = &cobra.Command{
	Use:   "recount",
	Short: "Recompute population counters from the stored animals",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		store, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		ids := []int{recountShedId}
		if recountShedId == 0 {
			if ids, err = store.Sheds.IDs(ctx); err != nil {
				return err
			}
		}

		sheds := make([]*models.Shed, len(ids))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, id := range ids {
			g.Go(func() error {
				shed, err := store.Sheds.Recount(gctx, id)
				if err != nil {
					return fmt.Errorf("shed %d: %w", id, err)
				}
				sheds[i] = shed
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, shed := range sheds {
			fmt.Fprintf(cmd.OutOrStdout(), "shed %d %s: %d cuys\n", shed.ID, shed.Code, shed.TotalNumberCuys)
		}
		return nil
	},
}

func init() {
	recountCmd.Flags().IntVar(&recountShedId, "shed", 0, "recount one shed; all sheds when omitted")
}

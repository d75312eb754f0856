package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arenalist/domain/list"
	"arenalist/infra/memory"
	"arenalist/infra/snapshot"
)

// NewSnapshotCommand creates the snapshot command group.
func NewSnapshotCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, load and list int list snapshots",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "./snapshots", "snapshot store directory")

	withStore := func(fn func(cmd *cobra.Command, s *snapshot.Store, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) (err error) {
			s, err := snapshot.Open(dir)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := s.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("close snapshot store: %w", cerr)
				}
			}()
			return fn(cmd, s, args)
		}
	}

	var values []int
	save := &cobra.Command{
		Use:   "save NAME",
		Short: "Store a list of ints under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, s *snapshot.Store, args []string) error {
			l, err := list.FromSlice(values, memory.Allocator[int]{})
			if err != nil {
				return err
			}
			if err := snapshot.Save(s, args[0], l); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s: %d elements\n", args[0], l.Len())
			return nil
		}),
	}
	save.Flags().IntSliceVar(&values, "values", nil, "comma-separated ints")

	var arenaBytes int
	load := &cobra.Command{
		Use:   "load NAME",
		Short: "Restore NAME onto an arena and print it",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, s *snapshot.Store, args []string) error {
			if err := checkArenaBytes(arenaBytes); err != nil {
				return err
			}
			arena := memory.NewArena(arenaBytes)
			l, err := snapshot.Load(s, args[0], memory.NewAllocator[int](memory.NewArenaProvider(arena)))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %v arena=%d/%d\n", args[0], l.Values(), arena.Used(), arena.Cap())
			return nil
		}),
	}
	load.Flags().IntVar(&arenaBytes, "arena-bytes", defaultArenaBytes, "arena capacity in bytes")

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, s *snapshot.Store, _ []string) error {
			names, err := s.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				h, err := s.Info(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", h.Name, h.Count, h.Created.Format("2006-01-02T15:04:05"))
			}
			return nil
		}),
	}

	rm := &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(_ *cobra.Command, s *snapshot.Store, args []string) error {
			return s.Delete(args[0])
		}),
	}

	cmd.AddCommand(save, load, ls, rm)
	return cmd
}

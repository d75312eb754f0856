package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arenalist/domain/list"
	"arenalist/infra/memory"
)

const defaultArenaBytes = 4096

func checkArenaBytes(n int) error {
	if n < 0 {
		return fmt.Errorf("arena-bytes must not be negative, got %d", n)
	}
	return nil
}

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	var arenaBytes int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Push and pop a few ints on an arena",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkArenaBytes(arenaBytes); err != nil {
				return err
			}
			arena := memory.NewArena(arenaBytes)
			l := list.NewWithAllocator(memory.NewAllocator[int](memory.NewArenaProvider(arena)))
			out := cmd.OutOrStdout()

			for _, step := range []struct {
				name string
				run  func() error
			}{
				{"push_back 1", func() error { return l.PushBack(1) }},
				{"push_back 2", func() error { return l.PushBack(2) }},
				{"push_front 0", func() error { return l.PushFront(0) }},
				{"pop_back", func() error { l.PopBack(); return nil }},
			} {
				if err := step.run(); err != nil {
					return fmt.Errorf("%s: %w", step.name, err)
				}
				_, _ = fmt.Fprintf(out, "%-13s %v size=%d arena=%d/%d\n",
					step.name, l.Values(), l.Len(), arena.Used(), arena.Cap())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&arenaBytes, "arena-bytes", defaultArenaBytes, "arena capacity in bytes")
	return cmd
}

// NewFillCommand creates the fill command.
func NewFillCommand() *cobra.Command {
	var (
		arenaBytes int
		count      int
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Build a list of default ints on an arena and report the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative, got %d", count)
			}
			if err := checkArenaBytes(arenaBytes); err != nil {
				return err
			}
			arena := memory.NewArena(arenaBytes)
			tr := memory.NewTracker(memory.NewArenaProvider(arena))
			out := cmd.OutOrStdout()

			l, err := list.NewN(count, memory.NewAllocator[int](tr))
			st := tr.Stats()
			if err != nil {
				_, _ = fmt.Fprintf(out, "rolled back: %v\n", err)
				_, _ = fmt.Fprintf(out, "allocations=%d deallocations=%d outstanding=%d arena=%d/%d\n",
					st.Allocations, st.Deallocations, st.Outstanding, arena.Used(), arena.Cap())
				return nil
			}
			_, _ = fmt.Fprintf(out, "built %d elements\n", l.Len())
			_, _ = fmt.Fprintf(out, "allocations=%d outstanding=%d arena=%d/%d\n",
				st.Allocations, st.Outstanding, arena.Used(), arena.Cap())
			return nil
		},
	}
	cmd.Flags().IntVar(&arenaBytes, "arena-bytes", defaultArenaBytes, "arena capacity in bytes")
	cmd.Flags().IntVar(&count, "count", 3, "number of elements to build")
	return cmd
}

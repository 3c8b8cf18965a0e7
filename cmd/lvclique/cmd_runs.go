package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect persisted runs",
	}
	cmd.AddCommand(newRunsListCmd(root), newRunsShowCmd(root))

	return cmd
}

func newRunsListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			st, err := openStore(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tSOURCE\tMIN\tCLIQUES")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Source, r.MinSize, len(r.Cliques))
			}
			return tw.Flush()
		},
	}
}

func newRunsShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the cliques of one stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			st, err := openStore(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			defer st.Close()

			r, err := st.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "run %s (%s)\n", r.ID, r.CreatedAt.Format(time.RFC3339))
			fmt.Fprintf(w, "source %s, min size %d, %d vertices, %d edges\n", r.Source, r.MinSize, r.Vertices, r.Edges)
			for i, c := range r.Cliques {
				fmt.Fprintf(w, "%4d  %v\n", i+1, c)
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/livinlefevreloca/chrono/internal/db"
	"github.com/livinlefevreloca/chrono/internal/resolver"
	"github.com/spf13/cobra"
)

func newNextCmd(a *app) *cobra.Command {
	var direction string
	var count int

	cmd := &cobra.Command{
		Use:   "next <unit>",
		Short: "Step through successive spans of a unit",
		Example: `  chrono next friday
  chrono next month --direction past --count 3
  chrono next 17:30 --now "2006-08-16 14:00:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.resolver.Resolve(resolver.Request{
				Unit:      args[0],
				Operation: resolver.OpNext,
				Direction: direction,
				Count:     count,
			})
			if err != nil {
				return err
			}
			return a.printResult(result)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "future", "future or past")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of spans to step through")
	return cmd
}

func newThisCmd(a *app) *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "this <unit>",
		Short: "Show the current span of a unit",
		Example: `  chrono this week
  chrono this year --direction past`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.resolver.Resolve(resolver.Request{
				Unit:      args[0],
				Operation: resolver.OpThis,
				Direction: direction,
			})
			if err != nil {
				return err
			}
			return a.printResult(result)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "", "future, past or none (default: engine context from config)")
	return cmd
}

func newOffsetCmd(a *app) *cobra.Command {
	var direction, begin, end string
	var amount int64

	cmd := &cobra.Command{
		Use:   "offset <unit>",
		Short: "Move a span by a number of units",
		Example: `  chrono offset hours --amount 3 --direction past
  chrono offset month -a 1 --begin "2006-12-16" --end "2006-12-17"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseSpan(begin, end)
			if err != nil {
				return err
			}
			result, err := a.resolver.Resolve(resolver.Request{
				Unit:      args[0],
				Operation: resolver.OpOffset,
				Direction: direction,
				Amount:    amount,
				Base:      base,
			})
			if err != nil {
				return err
			}
			return a.printResult(result)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "future", "future or past")
	cmd.Flags().Int64VarP(&amount, "amount", "a", 0, "number of units to move")
	cmd.Flags().StringVar(&begin, "begin", "", "begin of the span to move (default: now)")
	cmd.Flags().StringVar(&end, "end", "", "end of the span to move")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func newWidthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "width <unit>...",
		Short: "Show the nominal width of units in seconds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "UNIT\tSECONDS")
			for _, unit := range args {
				result, err := a.resolver.Resolve(resolver.Request{
					Unit:      unit,
					Operation: resolver.OpWidth,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\n", result.Unit, result.Width)
			}
			return w.Flush()
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled resolutions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolutions, err := a.resolver.History(limit)
			if err != nil {
				return err
			}
			return a.printHistory(resolutions)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of entries (0 for all)")
	return cmd
}

func (a *app) printResult(result *resolver.Result) error {
	w := tabwriter.NewWriter(a.stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "# %s %s (%s) from %s\n", result.Operation, result.Unit, result.Direction, result.Now)
	fmt.Fprintln(w, "#\tBEGIN\tEND\tSECONDS")
	for i, s := range result.Spans {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", i+1, s.Begin(), s.End(), s.DurationSeconds())
	}
	return w.Flush()
}

func (a *app) printHistory(resolutions []*db.Resolution) error {
	w := tabwriter.NewWriter(a.stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tOPERATION\tUNIT\tDIRECTION\tREFERENCE\tSPANS")
	for _, res := range resolutions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			res.ID,
			res.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			res.Operation,
			res.Unit,
			res.Direction,
			res.Reference.UTC().Format("2006-01-02 15:04:05"),
			len(res.Spans))
	}
	return w.Flush()
}

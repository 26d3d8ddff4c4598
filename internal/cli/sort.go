package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
)

func newSortCommand(a *app) *cobra.Command {
	var (
		comparator string
		style      string
		reverse    bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort UUIDs read from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.comparator(comparator)
			if err != nil {
				return err
			}
			st, err := a.style(style)
			if err != nil {
				return err
			}

			var ids []guuid.UUID
			sc := bufio.NewScanner(cmd.InOrStdin())
			for line := 1; sc.Scan(); line++ {
				text := strings.TrimSpace(sc.Text())
				if text == "" {
					continue
				}
				id, err := guuid.Parse(text)
				if err != nil {
					return fmt.Errorf("line %d: %w", line, err)
				}
				ids = append(ids, id)
			}
			if err := sc.Err(); err != nil {
				return err
			}

			c.Sort(ids)
			out := cmd.OutOrStdout()
			for i := range ids {
				id := ids[i]
				if reverse {
					id = ids[len(ids)-1-i]
				}
				fmt.Fprintln(out, id.Encode(st))
			}
			a.logger.Debug("sorted", "comparator", c, "count", len(ids))
			return nil
		},
	}
	cmd.Flags().StringVar(&comparator, "comparator", "", "Byte order: default|sqlserver|mongodb")
	cmd.Flags().StringVar(&style, "style", "", "Output style")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Descending order")
	return cmd
}

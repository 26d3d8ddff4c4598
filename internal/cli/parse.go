package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
)

func newParseCommand(a *app) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Decode UUID text in any supported notation",
		Long:  "parse accepts dashed, braced, parenthesised, urn:uuid:, bare hex, struct dump, Base64 and Base32 text. Without --style it prints every encoding along with the version and, for sequential UUIDs, the embedded time under each comparator.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, text := range args {
				id, err := guuid.Parse(text)
				if err != nil {
					return err
				}
				if style != "" {
					st, err := guuid.ParseStyle(style)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, id.Encode(st))
					continue
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				describe(out, id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "Print only this encoding")
	return cmd
}

func describe(w io.Writer, id guuid.UUID) {
	fmt.Fprintf(w, "version:  %s\n", id.Version())
	fmt.Fprintf(w, "variant:  %s\n", id.Variant())
	for _, st := range guuid.Styles() {
		fmt.Fprintf(w, "%-9s %s\n", string(st)+":", id.Encode(st))
	}
	fmt.Fprintf(w, "storage:  %x\n", id.Bytes())
	for _, c := range guuid.Comparators() {
		if t, ok := id.Time(c); ok {
			fmt.Fprintf(w, "time[%s]: %s\n", c, t.Format(time.RFC3339Nano))
		}
	}
}

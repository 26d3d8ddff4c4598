package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		kind       string
		count      int
		comparator string
		style      string
		seed       string
		name       string
	)

	cmd := &cobra.Command{
		Use:     "new [name]",
		Short:   "Generate UUIDs",
		Aliases: []string{"gen"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  guuid new
  guuid new --kind sequential --comparator sqlserver -n 5
  guuid new --kind sha1 https://example.com/orders/42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New("-n must be at least 1")
			}
			st, err := a.style(style)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				name = args[0]
			}

			next, err := a.generator(kind, comparator, seed, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				id, err := next()
				if err != nil {
					return fmt.Errorf("generate: %w", err)
				}
				fmt.Fprintln(out, id.Encode(st))
			}
			a.logger.Debug("generated", "kind", kind, "count", count)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "random", "Generator: random|sequential|md5|sha1")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs to print")
	cmd.Flags().StringVar(&comparator, "comparator", "", "Byte order for sequential UUIDs: default|sqlserver|mongodb")
	cmd.Flags().StringVar(&style, "style", "", "Output style: D|d|L|B|b|P|p|N|n|U|Z|z|X")
	cmd.Flags().StringVar(&seed, "seed", "", "UUID mixed into random output")
	cmd.Flags().StringVar(&name, "name", "", "Input for md5 and sha1")
	return cmd
}

// generator resolves the flags of the new command to a producer.
func (a *app) generator(kind, comparator, seed, name string) (func() (guuid.UUID, error), error) {
	switch strings.ToLower(kind) {
	case "random", "v4", "":
		if seed == "" {
			return a.gen.NewRandom, nil
		}
		s, err := guuid.Parse(seed)
		if err != nil {
			return nil, fmt.Errorf("--seed: %w", err)
		}
		return func() (guuid.UUID, error) { return a.gen.NewRandomSeeded(s) }, nil
	case "sequential", "seq", "comb":
		c, err := a.comparator(comparator)
		if err != nil {
			return nil, err
		}
		return func() (guuid.UUID, error) { return a.gen.NewSequential(c) }, nil
	case "md5":
		id := guuid.NewMD5([]byte(name))
		return func() (guuid.UUID, error) { return id, nil }, nil
	case "sha1":
		id := guuid.NewSHA1([]byte(name))
		return func() (guuid.UUID, error) { return id, nil }, nil
	default:
		return nil, fmt.Errorf("unknown --kind %q", kind)
	}
}

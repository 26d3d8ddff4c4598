package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
	"github.com/Lzww0608/guuid/v2/internal/keystore"
)

// ErrOrderMismatch is returned by verify-order --strict when the backend does
// not keep generation order.
var ErrOrderMismatch = errors.New("backend order differs from generation order")

// stepClock advances by step on every reading so consecutive sequential UUIDs
// carry distinct instants.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newVerifyOrderCommand(a *app) *cobra.Command {
	var (
		comparator string
		backend    string
		count      int
		step       time.Duration
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "verify-order",
		Short: "Check that sequential UUIDs keep generation order in a backend",
		Long: `verify-order generates sequential UUIDs for one comparator and reports how
many adjacent pairs a backend sorts out of generation order.

The backend is "mysql" (a BINARY(16) primary key reached through mysql.dsn or
GUUID_MYSQL_DSN) or a comparator name to sort in process. With no --backend,
mysql is used when a DSN is configured and the default comparator otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 2 {
				return errors.New("-n must be at least 2")
			}
			if step < 100*time.Nanosecond {
				return errors.New("--step must be at least 100ns, one tick of the time field")
			}
			c, err := a.comparator(comparator)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			orderer, label, closeFn, err := a.orderer(ctx, backend)
			if err != nil {
				return err
			}
			defer closeFn()

			gen := guuid.NewGenerator(guuid.WithClock(&stepClock{t: time.Now(), step: step}))
			ids := make([]guuid.UUID, count)
			for i := range ids {
				if ids[i], err = gen.NewSequential(c); err != nil {
					return err
				}
			}

			order, err := orderer.Order(ctx, ids)
			if err != nil {
				return err
			}
			inversions := keystore.Inversions(order)
			a.logger.Info("order verified", "comparator", c, "backend", label, "count", count, "inversions", inversions)

			fmt.Fprintf(cmd.OutOrStdout(), "comparator=%s backend=%s count=%d inversions=%d\n", c, label, count, inversions)
			if strict && inversions > 0 {
				return ErrOrderMismatch
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&comparator, "comparator", "", "Comparator the UUIDs are generated for")
	cmd.Flags().StringVar(&backend, "backend", "", "mysql, or a comparator name to sort in process")
	cmd.Flags().IntVarP(&count, "count", "n", 1000, "Number of UUIDs")
	cmd.Flags().DurationVar(&step, "step", time.Millisecond, "Clock advance between UUIDs")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero on any inversion")
	return cmd
}

// orderer resolves --backend. The returned close function is never nil.
func (a *app) orderer(ctx context.Context, backend string) (keystore.Orderer, string, func() error, error) {
	noop := func() error { return nil }
	if backend == "" {
		if a.cfg.MySQL.DSN != "" {
			backend = "mysql"
		} else {
			backend = guuid.ComparatorDefault.String()
		}
	}
	if backend != "mysql" {
		c, err := guuid.ParseComparator(backend)
		if err != nil {
			return nil, "", nil, err
		}
		return keystore.Memory{Comparator: c}, c.String(), noop, nil
	}

	mc := a.cfg.MySQL
	if mc.DSN == "" {
		return nil, "", nil, errors.New("mysql backend needs mysql.dsn or GUUID_MYSQL_DSN")
	}
	store, err := keystore.Open(mc.DSN, keystore.Options{
		Table:           mc.Table,
		MaxOpenConns:    mc.MaxOpenConns,
		MaxIdleConns:    mc.MaxIdleConns,
		ConnMaxLifetime: mc.ConnMaxLifetime,
		Logger:          a.logger,
	})
	if err != nil {
		return nil, "", nil, err
	}
	if err := store.EnsureTable(ctx); err != nil {
		store.Close()
		return nil, "", nil, err
	}
	return store, "mysql", store.Close, nil
}

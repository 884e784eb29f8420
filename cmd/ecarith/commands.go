package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoCmd reproduces the reference scenario on y^2 = x^3 + 4x + 4 mod 313.
func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample computation on the curve (4, 4, 313)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := curves.New(4, 4, 313)
			if err != nil {
				return err
			}

			p1 := curves.NewPoint(274, 288)
			p2 := curves.NewPoint(159, 45)

			fmt.Fprintf(a.stdout, "Is p1 on the curve? %t\n", curve.IsOnCurve(p1))
			fmt.Fprintf(a.stdout, "Is p2 on the curve? %t\n", curve.IsOnCurve(p2))

			sum, err := curve.Add(p1, p2)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "p1 + p2 = %s\n", sum)

			dbl, err := curve.Double(p1)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "2 * p1 = %s\n", dbl)
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add P Q",
		Short: "Add two points (written as x,y or inf)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := a.curve()
			if err != nil {
				return err
			}
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			q, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			a.warnOffCurve(curve, p, q)

			r, err := curve.Add(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, r)
			return nil
		},
	}
}

func (a *app) doubleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "double P",
		Short: "Double a point (written as x,y or inf)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := a.curve()
			if err != nil {
				return err
			}
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			a.warnOffCurve(curve, p)

			r, err := curve.Double(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, r)
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check P",
		Short: "Report whether a point lies on the curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := a.curve()
			if err != nil {
				return err
			}
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, curve.IsOnCurve(p))
			return nil
		},
	}
}

func (a *app) inverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse A M",
		Short: "Compute the inverse of A modulo M",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt(args[0])
			if err != nil {
				return err
			}
			m, err := parseInt(args[1])
			if err != nil {
				return err
			}

			inv, err := field.Inverse(v, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, inv)
			return nil
		},
	}
}

func (a *app) pointsCmd() *cobra.Command {
	var limit int64
	cmd := &cobra.Command{
		Use:   "points",
		Short: "List every point of the curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := a.curve()
			if err != nil {
				return err
			}
			points, err := curve.Points(limit)
			if err != nil {
				return err
			}
			for _, p := range points {
				fmt.Fprintln(a.stdout, p)
			}
			a.logger.Info("enumerated curve", zap.Int("order", len(points)))
			return nil
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", curves.DefaultEnumerationLimit, "Largest modulus to enumerate")
	return cmd
}

func (a *app) curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the registered curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range curves.Names() {
				c, err := curves.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%-8s %s\n", name, c)
			}
			return nil
		},
	}
}

func (a *app) warnOffCurve(curve *curves.Curve, points ...curves.Point) {
	for _, p := range points {
		if !curve.IsOnCurve(p) {
			a.logger.Warn("point is not on the curve", zap.Stringer("point", p))
		}
	}
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return v, nil
}

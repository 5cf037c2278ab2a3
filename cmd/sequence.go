package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/seqiz/internal/numeric"
	"github.com/abhisek/seqiz/internal/report"
	"github.com/abhisek/seqiz/internal/sequence"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify TERMS...",
	Short: "Classify terms and print the formula for the nth term",
	Long: `Classify terms and print the formula for the nth term.

With --expect the command fails unless the terms classify as the given type
(constant, arithmetic, geometric, quadratic or none).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var expect sequence.Type
		if cmd.Flags().Changed("expect") {
			name, _ := cmd.Flags().GetString("expect")
			t, err := sequence.ParseType(strings.ToLower(name))
			if err != nil {
				return err
			}
			expect = t
		}

		seq, err := buildSequence(args)
		if err != nil {
			return err
		}
		if err := render(cmd, report.New(seq)); err != nil {
			return err
		}
		if expect != "" && seq.Type() != expect {
			return fmt.Errorf("sequence is %s, expected %s", seq.Type(), expect)
		}
		return nil
	},
}

var termCmd = &cobra.Command{
	Use:   "term TERMS...",
	Short: "Print the nth term of a sequence",
	Long: `Print the nth term of a sequence.

n is substituted directly into the formula: --n 1 is the first observed term
and --n 0 is the term one step before it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt64("n")

		seq, err := buildSequence(args)
		if err != nil {
			return err
		}
		v, err := seq.Term(n)
		if err != nil {
			return err
		}

		rep := report.New(seq)
		rep.AddValues(n, []numeric.Value{v}, cfg.Precision)
		return render(cmd, rep)
	},
}

var extendCmd = &cobra.Command{
	Use:   "extend TERMS...",
	Short: "Continue a sequence past its observed terms",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 0 || count > sequence.MaxExtrapolate {
			return fmt.Errorf("invalid --count %d: must be between 0 and %d", count, sequence.MaxExtrapolate)
		}

		seq, err := buildSequence(args)
		if err != nil {
			return err
		}

		// Default to the index right after the last observed term.
		from := int64(len(seq.Terms())) + 1
		if cmd.Flags().Changed("from") {
			from, _ = cmd.Flags().GetInt64("from")
		}
		if count > 0 && from > math.MaxInt64-int64(count-1) {
			return fmt.Errorf("invalid --from %d: --count %d runs past the largest index", from, count)
		}

		values, err := seq.Extrapolate(from, count)
		if err != nil {
			return err
		}

		rep := report.New(seq)
		rep.AddValues(from, values, cfg.Precision)
		return render(cmd, rep)
	},
}

func init() {
	classifyCmd.Flags().String("expect", "", "Fail unless the terms classify as this type")

	termCmd.Flags().Int64("n", 0, "Index of the term to compute (required)")
	_ = termCmd.MarkFlagRequired("n")

	extendCmd.Flags().Int64("from", 0, "First index to compute (default: after the last observed term)")
	extendCmd.Flags().Int("count", 5, "Number of terms to compute")
}

// buildSequence parses args into terms and classifies them.
func buildSequence(args []string) (*sequence.Sequence, error) {
	terms, err := numeric.ParseList(args)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("no terms given")
	}

	var opts []sequence.Option
	if cfg.Strict {
		opts = append(opts, sequence.WithIntegerCoefficients())
	}

	logrus.WithFields(logrus.Fields{
		"terms":  len(terms),
		"strict": cfg.Strict,
	}).Debug("Classifying sequence")

	seq, err := sequence.New(terms, opts...)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	entry := logrus.WithField("type", seq.Type())
	if eq := seq.Equation(); eq != nil {
		entry = entry.WithField("equation", eq.String())
	}
	entry.Debug("Classified sequence")

	return seq, nil
}

func render(cmd *cobra.Command, rep report.Report) error {
	r := report.Renderer{Format: cfg.Format, Color: cfg.Color}
	return r.Render(cmd.OutOrStdout(), rep)
}

// Package report turns a classified sequence into output for the CLI.
package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/seqiz/internal/config"
	"github.com/abhisek/seqiz/internal/numeric"
	"github.com/abhisek/seqiz/internal/sequence"
	"github.com/abhisek/seqiz/internal/ui/theme"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the serializable view of a sequence.
type Report struct {
	Terms    []string    `json:"terms" yaml:"terms"`
	Type     string      `json:"type" yaml:"type"`
	Equation string      `json:"equation,omitempty" yaml:"equation,omitempty"`
	Values   []TermValue `json:"values,omitempty" yaml:"values,omitempty"`
}

// TermValue is one evaluated index.
type TermValue struct {
	N     int64  `json:"n" yaml:"n"`
	Value string `json:"value" yaml:"value"`
	Kind  string `json:"kind" yaml:"kind"`

	// Decimal approximates a real Value; empty for integers.
	Decimal string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
}

// New builds a Report describing s.
func New(s *sequence.Sequence) Report {
	terms := s.Terms()
	r := Report{
		Terms: make([]string, len(terms)),
		Type:  s.Type().String(),
	}
	for i, t := range terms {
		r.Terms[i] = numeric.FormatRat(t)
	}
	if eq := s.Equation(); eq != nil {
		r.Equation = eq.String()
	}
	return r
}

// AddValues appends consecutive evaluated terms starting at index from.
// A positive precision adds a decimal approximation to real values.
func (r *Report) AddValues(from int64, values []numeric.Value, precision int) {
	for i, v := range values {
		tv := TermValue{
			N:     from + int64(i),
			Value: v.String(),
			Kind:  v.Kind().String(),
		}
		if precision > 0 && !v.IsInteger() {
			tv.Decimal = v.Decimal(precision)
		}
		r.Values = append(r.Values, tv)
	}
}

// Renderer writes reports in a configured format.
type Renderer struct {
	Format config.Format
	Color  bool
}

// Render writes rep to w.
func (r Renderer) Render(w io.Writer, rep Report) error {
	switch r.Format {
	case config.FormatJSON:
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	case config.FormatText, "":
		_, err := io.WriteString(w, r.text(rep))
		return err

	default:
		return fmt.Errorf("unsupported format %q", r.Format)
	}
}

func (r Renderer) text(rep Report) string {
	style := func(s string, st lipgloss.Style) string {
		if !r.Color {
			return s
		}
		return st.Render(s)
	}

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(style(fmt.Sprintf("%-10s", label), theme.Label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Sequence", style(strings.Join(rep.Terms, ", "), theme.Body))
	if rep.Type == sequence.TypeNone.String() {
		row("Type", style(rep.Type, theme.Unmatched))
		b.WriteString(style("No closed form matches these terms.", theme.Hint))
		b.WriteString("\n")
		return b.String()
	}
	row("Type", style(rep.Type, theme.Matched))
	row("nth term", style(rep.Equation, theme.Equation))

	for _, v := range rep.Values {
		val := style(v.Value, theme.Extrapolated)
		if v.Kind == numeric.KindReal.String() {
			val += style(" (real)", theme.Hint)
		}
		if v.Decimal != "" {
			val += style(" ≈ "+v.Decimal, theme.Hint)
		}
		row(fmt.Sprintf("n=%d", v.N), val)
	}
	return b.String()
}

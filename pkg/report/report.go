// Package report renders capacity estimates.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/docker/go-units"
	"github.com/gosuri/uitable"
	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/zcash-scale-calc/pkg/capacity"
	"github.com/oneconcern/zcash-scale-calc/pkg/errors"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity"
	"gopkg.in/yaml.v2"
)

// Output formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	// DefaultPrecision is the default number of decimal places for non-integral magnitudes
	DefaultPrecision = 6
)

var (
	// ErrUnknownFormat indicates an unsupported output format
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrTemplate indicates an invalid report template
	ErrTemplate = errors.New("invalid report template")

	// ErrPrecision indicates a negative number of decimal places
	ErrPrecision = errors.New("invalid precision")
)

const textTemplateString = `=== zcash-scale-calc ===

Max commitment rate: {{.OutputRate}}
Branch factor: {{.BranchFactor}}
Network lifetime: {{.Lifetime}}
{{- if .Depth}}
Merkle Tree depth: {{.Depth}}
{{- end}}

Total commits over network lifetime: {{.TotalCommits}} (~{{.TotalCommitsApprox}})
log_{{.LogBase}} of total commits: {{.LogTotalCommits}}
Minimal Merkle Tree height: {{.MinTreeHeight}}
`

var countSuffixes = []string{"", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// Formats supported by Render
func Formats() []string {
	return []string{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// Options to render a report
type Options struct {
	Format    string
	Precision int32
	Template  string // text/template, overrides the default text report
}

// Report is the printable view of an estimate
type Report struct {
	Mode               string `json:"mode" yaml:"mode"`
	OutputRate         string `json:"outputRate" yaml:"outputRate"`
	BranchFactor       string `json:"branchFactor" yaml:"branchFactor"`
	Lifetime           string `json:"lifetime" yaml:"lifetime"`
	Depth              string `json:"depth,omitempty" yaml:"depth,omitempty"`
	SecondsPerYear     string `json:"secondsPerYear" yaml:"secondsPerYear"`
	TotalCommits       string `json:"totalCommits" yaml:"totalCommits"`
	TotalCommitsApprox string `json:"totalCommitsApprox" yaml:"totalCommitsApprox"`
	LogBase            string `json:"logBase" yaml:"logBase"`
	LogTotalCommits    string `json:"logTotalCommits" yaml:"logTotalCommits"`
	MinTreeHeight      int64  `json:"minMerkleTreeHeight" yaml:"minMerkleTreeHeight"`
}

// New builds the printable view of an estimate.
//
// Integral magnitudes are rendered exactly, others with precision decimal places.
// The logarithm always has 2 decimal places.
func New(est capacity.Estimate, precision int32) Report {
	r := Report{
		Mode:               string(est.Mode),
		OutputRate:         display(est.OutputRate, precision),
		BranchFactor:       display(est.BranchFactor, precision),
		Lifetime:           display(est.Lifetime, precision),
		SecondsPerYear:     display(est.SecondsPerYear, precision),
		TotalCommits:       display(est.TotalCommits, precision),
		TotalCommitsApprox: units.CustomSize("%.4g%s", est.TotalCommits.Magnitude().InexactFloat64(), 1000.0, countSuffixes),
		LogBase:            est.BranchFactor.Magnitude().String(),
		LogTotalCommits:    est.LogTotalCommits.StringFixed(2),
		MinTreeHeight:      est.MinTreeHeight,
	}
	if est.Mode == capacity.LifetimeFromDepth {
		r.Depth = display(est.Depth, precision)
	}
	return r
}

func display(q quantity.Quantity, precision int32) string {
	if q.Magnitude().IsInteger() {
		return q.String()
	}
	return q.Format(precision)
}

// Render an estimate to w
func Render(w io.Writer, est capacity.Estimate, opts Options) error {
	if opts.Precision < 0 {
		return ErrPrecision.Detailf("%d, expected a non-negative number of decimal places", opts.Precision)
	}
	r := New(est, opts.Precision)

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		t, err := textTemplate(opts.Template)
		if err != nil {
			return err
		}
		return t.Execute(w, r)
	case FormatTable:
		return renderTable(w, r)
	case FormatJSON:
		enc := jsoniter.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return ErrUnknownFormat.Detailf("%q, expected one of %s", opts.Format, strings.Join(Formats(), ", "))
	}
}

func textTemplate(custom string) (*template.Template, error) {
	if custom != "" {
		t, err := template.New("report").Parse(custom)
		if err != nil {
			return nil, ErrTemplate.Wrap(err)
		}
		return t, nil
	}
	return template.Must(template.New("report").Parse(textTemplateString)), nil
}

func renderTable(w io.Writer, r Report) error {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("Max commitment rate:", r.OutputRate)
	table.AddRow("Branch factor:", r.BranchFactor)
	table.AddRow("Network lifetime:", r.Lifetime)
	if r.Depth != "" {
		table.AddRow("Merkle Tree depth:", r.Depth)
	}
	table.AddRow("Total commits over network lifetime:", r.TotalCommits)
	table.AddRow(fmt.Sprintf("log_%s of total commits:", r.LogBase), r.LogTotalCommits)
	table.AddRow("Minimal Merkle Tree height:", r.MinTreeHeight)
	_, err := fmt.Fprintln(w, table.String())
	return err
}

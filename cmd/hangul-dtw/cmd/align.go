// Package cmd - align command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dirhq88/hangul-dtw/align"
	"github.com/dirhq88/hangul-dtw/internal/logging"
	"github.com/dirhq88/hangul-dtw/jamo"
	"github.com/dirhq88/hangul-dtw/render"
)

var (
	showMatrix    bool
	showAlignment bool
	costsFile     string
	foreignMode   string
	outputFormat  string
)

// alignCmd represents the align command
var alignCmd = &cobra.Command{
	Use:   "align GROUND_TRUTH RAW",
	Short: "Align a raw Hangul string against a ground-truth string",
	Long: `Decompose both strings into jamo, run DTW over the unit sequences and
print the resulting alignment.

Examples:
  hangul-dtw align 안녕하세요 안녕하세여
  hangul-dtw align --matrix 안녕하세요 안녕하세여
  hangul-dtw align --foreign drop "안녕하세요!" "안녕 하세여"
  hangul-dtw align --costs scheme.yml --format json 안녕하세요 안녕하세여`,
	Args: cobra.ExactArgs(2),
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().BoolVarP(&showMatrix, "matrix", "m", false, "print the cost matrix with the path marked")
	alignCmd.Flags().BoolVarP(&showAlignment, "alignment", "a", true, "print the syllable-level alignment")
	alignCmd.Flags().StringVarP(&costsFile, "costs", "c", "", "YAML cost scheme file")
	alignCmd.Flags().StringVar(&foreignMode, "foreign", "fail", "non-Hangul rune policy (fail, keep, drop)")
	alignCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
}

func runAlign(cmd *cobra.Command, args []string) error {
	start := time.Now()

	opts := align.DefaultOptions()

	switch foreignMode {
	case "fail":
		opts.Foreign = jamo.ForeignFail
	case "keep":
		opts.Foreign = jamo.ForeignKeep
	case "drop":
		opts.Foreign = jamo.ForeignDrop
	default:
		return fmt.Errorf("unknown --foreign policy %q (want fail, keep or drop)", foreignMode)
	}

	if costsFile != "" {
		costs, err := align.LoadCosts(costsFile)
		if err != nil {
			return err
		}
		opts.Costs = costs
		logging.Sugar.Debugw("loaded cost scheme", "path", costsFile)
	}

	if outputFormat == "text" {
		opts.RenderMatrix = showMatrix
		opts.RenderAlignment = showAlignment
		opts.Renderer = render.New(os.Stdout)
	}

	res, err := align.Align(args[0], args[1], &opts)
	if err != nil {
		return err
	}

	logging.Sugar.Debugw("alignment complete",
		"gt_units", res.GT.Len(),
		"raw_units", res.Raw.Len(),
		"distance", res.Distance(),
		"elapsed", time.Since(start),
	)

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(buildReport(args[0], args[1], res))
	}

	fmt.Printf("distance: %.2f\n", res.Distance())
	return nil
}

// report is the JSON view of a Result. The library types carry no
// serialization tags; the CLI owns its output shape.
type report struct {
	GroundTruth string       `json:"ground_truth"`
	Raw         string       `json:"raw"`
	Distance    float64      `json:"distance"`
	Path        [][2]int     `json:"path"`
	Units       []reportStep `json:"units"`
	Syllables   []reportSpan `json:"syllables"`
}

type reportStep struct {
	Op   string  `json:"op"`
	GT   string  `json:"gt,omitempty"`
	Raw  string  `json:"raw,omitempty"`
	Cost float64 `json:"cost"`
}

type reportSpan struct {
	GT    []int  `json:"gt_syllables"`
	Raw   []int  `json:"raw_syllables"`
	Steps [2]int `json:"steps"`
}

func buildReport(gtText, rawText string, res *align.Result) report {
	rep := report{
		GroundTruth: gtText,
		Raw:         rawText,
		Distance:    res.Distance(),
		Path:        make([][2]int, len(res.Path)),
		Units:       make([]reportStep, len(res.Units)),
		Syllables:   make([]reportSpan, len(res.Syllables)),
	}
	for i, p := range res.Path {
		rep.Path[i] = [2]int{p.I, p.J}
	}
	for i, st := range res.Units {
		rs := reportStep{Op: st.Op.String(), Cost: st.Cost}
		if st.GT != align.Gap {
			rs.GT = string(res.GT.Units[st.GT].Rune)
		}
		if st.Raw != align.Gap {
			rs.Raw = string(res.Raw.Units[st.Raw].Rune)
		}
		rep.Units[i] = rs
	}
	for i, span := range res.Syllables {
		rep.Syllables[i] = reportSpan{
			GT:    span.GT,
			Raw:   span.Raw,
			Steps: [2]int{span.Start, span.End},
		}
	}
	return rep
}

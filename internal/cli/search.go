package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/submodk/ioformat"
	"github.com/katalvlaran/submodk/score/domset"
	"github.com/katalvlaran/submodk/score/kmedoid"
	"github.com/katalvlaran/submodk/score/negfarness"
	"github.com/katalvlaran/submodk/search"
)

var (
	flagStructure string
	flagScore     string
	flagK         int
	flagInput     string
	flagInitial   string
	flagEnableUB1 bool
	flagEnableUB2 bool
	flagEnablePBF bool
	flagPBFAlgo   string
	flagPBFBlock  int
	flagTimeLimit float64
	flagMaxEvals  int64
	flagOutput    string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the exact branch-and-bound search",
	RunE:  runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&flagStructure, "structure", "", "graph | k-medoid (required)")
	f.StringVar(&flagScore, "score", "", "negative-group-farness | partial-dominating-set | euclidian-distance (required)")
	f.IntVar(&flagK, "k", 0, "target set size (required)")
	f.StringVar(&flagInput, "input", "", "input instance file (required)")
	f.StringVar(&flagInitial, "initial", "", "optional initial-solution JSON file")
	f.BoolVar(&flagEnableUB1, "enable-ub1", true, "enable the UB1 bound")
	f.BoolVar(&flagEnableUB2, "enable-ub2", true, "enable the UB2 bound")
	f.BoolVar(&flagEnablePBF, "enable-pbf", true, "enable the UBPBF bound")
	f.StringVar(&flagPBFAlgo, "pbf-algo", "dp", "brute | dp")
	f.IntVar(&flagPBFBlock, "pbf-block", 4, "PBF block size")
	f.Float64Var(&flagTimeLimit, "time-limit", 0, "wall-clock budget in seconds (0 = unbounded)")
	f.Int64Var(&flagMaxEvals, "max-evals", 0, "score-function evaluation budget (0 = unbounded)")
	f.StringVar(&flagOutput, "output", "", "output path (default stdout)")

	_ = searchCmd.MarkFlagRequired("structure")
	_ = searchCmd.MarkFlagRequired("score")
	_ = searchCmd.MarkFlagRequired("k")
	_ = searchCmd.MarkFlagRequired("input")
}

func baseConfig() search.Config {
	cfg := search.DefaultConfig(flagK)
	cfg.EnableUB1 = flagEnableUB1
	cfg.EnableUB2 = flagEnableUB2
	cfg.EnablePBF = flagEnablePBF
	cfg.PBFBlock = flagPBFBlock
	if flagPBFAlgo == "brute" {
		cfg.PBFAlgo = search.PBFBruteForce
	}
	if flagTimeLimit > 0 {
		cfg.TimeLimit = time.Duration(flagTimeLimit * float64(time.Second))
	}
	cfg.MaxSFEvaluations = flagMaxEvals

	return cfg
}

func loadInitialSolution() ([]int, error) {
	if flagInitial == "" {
		return nil, nil
	}

	f, err := os.Open(flagInitial)
	if err != nil {
		return nil, errors.Wrap(err, "open initial solution file")
	}
	defer f.Close()

	ids, err := ioformat.ParseInitialSolution(f)
	if err != nil {
		return nil, errors.Wrap(err, "parse initial solution file")
	}

	return ids, nil
}

func openOutput() (*os.File, error) {
	if flagOutput == "" {
		return os.Stdout, nil
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return nil, errors.Wrap(err, "open output file")
	}

	return f, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if flagK < 1 {
		return errors.New("k must be >= 1")
	}

	switch flagStructure {
	case "graph":
		return runGraphSearch()
	case "k-medoid":
		return runPointsSearch()
	default:
		return errors.Errorf("unknown structure %q", flagStructure)
	}
}

func runGraphSearch() error {
	f, err := os.Open(flagInput)
	if err != nil {
		return errors.Wrap(err, "open graph input")
	}
	defer f.Close()

	g, err := ioformat.ParseGraph(f)
	if err != nil {
		return errors.Wrap(err, "parse graph input")
	}

	if flagK > g.N() {
		return errors.Errorf("k=%d exceeds n=%d", flagK, g.N())
	}

	cfg := baseConfig()
	initial, err := loadInitialSolution()
	if err != nil {
		return err
	}
	cfg.InitialSolution = initial

	var result search.Result[int64]
	switch flagScore {
	case "negative-group-farness":
		result, err = search.Run[int64](negfarness.New(g), cfg)
	case "partial-dominating-set":
		result, err = search.Run[int64](domset.New(g), cfg)
	default:
		return errors.Errorf("score %q is not a graph objective", flagScore)
	}
	if err != nil {
		return err
	}

	return emit(resultDocInt(result, cfg))
}

func runPointsSearch() error {
	if flagScore != "euclidian-distance" {
		return errors.Errorf("score %q is not a k-medoid objective", flagScore)
	}

	f, err := os.Open(flagInput)
	if err != nil {
		return errors.Wrap(err, "open points input")
	}
	defer f.Close()

	p, err := ioformat.ParseDataPoints(f)
	if err != nil {
		return errors.Wrap(err, "parse points input")
	}

	if flagK > p.N() {
		return errors.Errorf("k=%d exceeds n=%d", flagK, p.N())
	}

	cfg := baseConfig()
	initial, err := loadInitialSolution()
	if err != nil {
		return err
	}
	cfg.InitialSolution = initial

	st := kmedoid.New(p)
	result, err := search.Run[float64](st, cfg)
	if err != nil {
		return err
	}

	return emit(resultDocFloat(result, cfg))
}

func emit(doc ioformat.ResultDoc) error {
	doc.RunID = runID

	out, err := openOutput()
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	if err := ioformat.WriteResult(out, doc); err != nil {
		return err
	}

	if out != os.Stdout {
		recap(doc)
	}
	logDone(doc)

	return nil
}

func logDone(doc ioformat.ResultDoc) {
	if doc.TimedOut {
		logger.Warn("budget exhausted before the search completed")
	}
	logger.Info("search complete: score=%.6f evals=%d timed_out=%v", doc.BestScore, doc.SFEvaluations, doc.TimedOut)
}

// recap prints a short colorized summary to stderr when the JSON result
// went to a file rather than stdout, so an interactive run still shows the
// headline number without opening the file.
func recap(doc ioformat.ResultDoc) {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color("13")).
		Foreground(lipgloss.Color("0")).
		Padding(0, 1)

	os.Stderr.WriteString(style.Render("submodk") + "\n")
	os.Stderr.WriteString("best_score=")
	os.Stderr.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%.6f", doc.BestScore)))
	os.Stderr.WriteString("\n")
}

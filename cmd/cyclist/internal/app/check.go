package app

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ngorogiannis/cyclist/automaton"
	"github.com/ngorogiannis/cyclist/closure"
	"github.com/ngorogiannis/cyclist/hgraph"
	"github.com/ngorogiannis/cyclist/loader"
)

// strategyFunc runs one CCL strategy against g with flags.
type strategyFunc func(g *hgraph.HeightedGraph, flags closure.Flags) (bool, error)

func strategyRelational(g *hgraph.HeightedGraph, flags closure.Flags) (bool, error) {
	return closure.NewEngine(g).RelationalCheck(flags)
}

func strategyOrderReduced(g *hgraph.HeightedGraph, flags closure.Flags) (bool, error) {
	return closure.NewEngine(g).OrderReducedCheck(flags)
}

func strategyFWK(g *hgraph.HeightedGraph, flags closure.Flags) (bool, error) {
	return closure.NewEngine(g).FWKCheck(flags)
}

func newStrategyCmd(use, short string, fn strategyFunc, input, flagStr *string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, flags, err := loadInput(*input, *flagStr)
			if err != nil {
				return err
			}
			sound, err := fn(g, flags)
			return reportVerdict(use, sound, err)
		},
	}
}

func newSLACmd(input *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sla",
		Short: "Run the automaton-based SLA check",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := loadInput(*input, "")
			if err != nil {
				return err
			}
			sound, err := automaton.NewChecker(g, automaton.NewReferenceBackend()).SLACheck()
			return reportVerdict("sla", sound, err)
		},
	}
}

// loadInput opens input (a file path, or "-" for stdin), decodes the graph,
// and parses the flag-letter string. Any failure here is an InputParseError
// per SPEC_FULL.md §7, mapped to exit code 2.
func loadInput(input, flagStr string) (*hgraph.HeightedGraph, closure.Flags, error) {
	r, err := openInput(input)
	if err != nil {
		return nil, 0, &exitError{code: 2}
	}
	defer r.Close()

	g, err := loader.DecodeGraph(r)
	if err != nil {
		log.Error().Err(err).Msg("cyclist: failed to decode graph")
		return nil, 0, &exitError{code: 2}
	}

	flags, err := loader.ParseFlags(flagStr)
	if err != nil {
		log.Error().Err(err).Msg("cyclist: failed to parse flags")
		return nil, 0, &exitError{code: 2}
	}
	return g, flags, nil
}

func openInput(input string) (io.ReadCloser, error) {
	if input == "" || input == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(input)
}

// reportVerdict maps a check's (bool, error) outcome onto the CLI's exit
// code contract: invariant violations (illegal flags, malformed graph
// state) are exit 3; a completed check is 0 (sound) or 1 (unsound).
func reportVerdict(strategy string, sound bool, err error) error {
	if err != nil {
		if errors.Is(err, closure.ErrInvalidFlags) ||
			errors.Is(err, hgraph.ErrCapacityExceeded) ||
			errors.Is(err, hgraph.ErrGraphFrozen) {
			log.Error().Err(err).Str("strategy", strategy).Msg("cyclist: invariant violation")
			return &exitError{code: 3}
		}
		log.Error().Err(err).Str("strategy", strategy).Msg("cyclist: check failed")
		return &exitError{code: 3}
	}

	log.Info().Str("strategy", strategy).Bool("sound", sound).Msg("cyclist: check complete")
	if sound {
		return nil
	}
	return &exitError{code: 1}
}

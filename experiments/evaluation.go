package experiments

import (
	"deepsea/agent"
	"deepsea/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunEvaluation evaluates the strategies and, when outDir is set, stores win rates and trial records under outDir/name.
func RunEvaluation(name, outDir string, kinds []agent.Kind, options ...Option) (Result, error) {
	if outDir != "" {
		options = append(options, WithRecords())
	}

	log.Info().Msgf("starting %s experiment...", name)
	result, err := Evaluate(kinds, options...)
	if err != nil {
		return Result{}, err
	}
	log.Info().Msgf("completed %s experiment", name)

	if outDir == "" {
		return result, nil
	}

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return Result{}, err
	}

	strategies := make([]string, len(result.Kinds))
	for i, kind := range result.Kinds {
		strategies[i] = string(kind)
	}
	if err := writer.WriteWinRates(strategies, result.WinRates, result.Trials); err != nil {
		return Result{}, err
	}
	log.Info().Msg("stored win rates")

	if err := writer.WriteTrialRecords(result.Records); err != nil {
		return Result{}, err
	}
	log.Info().Msgf("stored trial records in %s", writer.Dir())

	return result, nil
}

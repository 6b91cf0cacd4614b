package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"daylux/internal/ingest"
	"daylux/internal/metrics"
	"daylux/internal/portfolio"
	"daylux/internal/visuals"
)

var (
	inputPath    string
	daThreshold  float64
	udiMin       float64
	udiMax       float64
	workers      int
	scheduleFile string
)

// pointReport is one point's slice of the analyze output.
type pointReport struct {
	Point   string          `json:"point"`
	Metrics metrics.Annual  `json:"metrics"`
	Profile metrics.Summary `json:"profile"`
	Error   string          `json:"error,omitempty"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute annual metrics for every point in a samples file",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := ingest.Load(inputPath)
		if err != nil {
			return err
		}
		entries, err := ingest.Apply(records)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no sample records in %s", inputPath)
		}

		schedule, err := loadSchedule(scheduleFile)
		if err != nil {
			return err
		}

		items := make([]portfolio.Item, len(entries))
		for i, e := range entries {
			items[i] = portfolio.Item{Point: e.Point, Store: e.Store}
		}

		results, err := portfolio.AnnualMetrics(cmd.Context(), items, portfolio.Options{
			Workers:   workers,
			Threshold: daThreshold,
			Bounds:    [2]float64{udiMin, udiMax},
			Schedule:  schedule,
		})
		if err != nil {
			return err
		}

		reports := make([]pointReport, len(results))
		for i, r := range results {
			reports[i] = pointReport{Point: r.Point.String(), Metrics: r.Annual}
			if r.Err != nil {
				reports[i].Error = r.Err.Error()
				log.Warn().Err(r.Err).Str("point", r.Point.String()).Msg("Point failed, continuing")
				continue
			}
			reports[i].Profile = profile(entries[i])
		}

		out, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if cfg.EnableMermaidCharts {
			fmt.Println(visuals.GenerateDAChart(results))
			for i, r := range results {
				if r.Err == nil {
					fmt.Printf("\nPoint %d\n%s\n", entries[i].ID, visuals.GenerateUDIPie(r.Annual))
				}
			}
		}
		return nil
	},
}

// profile summarizes the point's combined totals at the default states.
func profile(e ingest.Entry) metrics.Summary {
	seq, err := e.Store.CombinedValuesByID(nil, nil)
	if err != nil {
		return metrics.Summary{}
	}
	var totals []float64
	for c, err := range seq {
		if err != nil {
			return metrics.Summary{}
		}
		totals = append(totals, c.Total)
	}
	return metrics.Summarize(totals)
}

// loadSchedule reads a JSON array of occupied hours of the year. An empty
// path means no occupancy filtering.
func loadSchedule(path string) (metrics.Schedule, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}
	var hours []float64
	if err := json.Unmarshal(data, &hours); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	return metrics.ScheduleOf(hours...), nil
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "samples file (JSONL, one record per line)")
	analyzeCmd.Flags().Float64Var(&daThreshold, "da-threshold", 0, "daylight autonomy threshold in lux (default from config, 300)")
	analyzeCmd.Flags().Float64Var(&udiMin, "udi-min", 0, "UDI lower bound in lux (default from config, 100)")
	analyzeCmd.Flags().Float64Var(&udiMax, "udi-max", 0, "UDI upper bound in lux (default from config, 2000)")
	analyzeCmd.Flags().IntVar(&workers, "workers", 0, "concurrent points (default from config, NumCPU)")
	analyzeCmd.Flags().StringVar(&scheduleFile, "schedule", "", "occupancy schedule file (JSON array of hours)")
	_ = analyzeCmd.MarkFlagRequired("input")

	analyzeCmd.PreRun = func(cmd *cobra.Command, args []string) {
		// Config supplies defaults for anything not set on the command line.
		if daThreshold == 0 {
			daThreshold = cfg.DAThreshold
		}
		if udiMin == 0 && udiMax == 0 {
			udiMin, udiMax = cfg.UDIMin, cfg.UDIMax
		}
		if workers == 0 {
			workers = cfg.Workers
		}
	}

	rootCmd.AddCommand(analyzeCmd)
}

// Command cli runs one estimate from the command line and prints the share
// text, optionally exporting the workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"settei/adapters/excel"
	"settei/app"
	"settei/domain/confidence"
	"settei/domain/setting"
	"settei/internal"
	"settei/internal/report"
	"settei/ports"
)

func main() {
	var (
		spins    = flag.Int("n", 0, "total spins")
		hits     = flag.Int("k", 0, "observed small-win hits")
		priorArg = flag.String("prior", "", `prior weights as "1:20,2:20,4:20,5:20,6:20" (default uniform)`)
		format   = flag.String("format", "text", "output format: text or markdown")
		outFile  = flag.String("o", "", "also export the workbook to this .xlsx path")
	)
	flag.Parse()

	prior, err := parsePrior(*priorArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	service := app.NewEstimateService(confidence.DefaultGoalConfigs(), internal.NewDefaultLogger())
	result, err := service.Estimate(context.Background(), ports.EstimateRequest{
		Spins: *spins,
		Hits:  *hits,
		Prior: prior,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch *format {
	case "markdown":
		fmt.Print(report.Markdown(result))
	default:
		fmt.Print(report.ShareText(result))
	}

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := excel.NewReportWriter().Export(result, f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", *outFile)
	}
}

// parsePrior reads "key:weight" pairs. Unknown keys are rejected here (the
// CLI is a boundary, unlike the engine which ignores them).
func parsePrior(arg string) (map[setting.Key]float64, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}
	prior := make(map[setting.Key]float64)
	for _, pair := range strings.Split(arg, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid prior entry %q (want key:weight)", pair)
		}
		key := setting.Key(strings.TrimSpace(parts[0]))
		if !setting.Valid(key) {
			return nil, fmt.Errorf("unknown setting %q", parts[0])
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight in %q: %v", pair, err)
		}
		prior[key] = weight
	}
	return prior, nil
}

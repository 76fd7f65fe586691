package main

import (
	"encoding/json"
	"evogamesim/interfaces"
	"evogamesim/util/file"
	"evogamesim/util/logger"
	"evogamesim/util/stats"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// summarize merges the results.json of every seed directory below INPUT_DIR into one csv,
// one line per (family, rule, point) with the mean and spread of the per seed means.
func main() {
	log := logger.NewSlog(os.Stderr, "info")

	dirName := "../../out"
	if len(os.Args) < 2 {
		log.Info("using standard input dir, use './summarize[.exe] INPUT_DIR OUT_DIR' to change it", "dir", dirName)
	} else {
		dirName = os.Args[1]
	}
	outDir := "./out"
	if len(os.Args) < 3 {
		log.Info("using standard output dir, use './summarize[.exe] INPUT_DIR OUT_DIR' to change it", "dir", outDir)
	} else {
		outDir = os.Args[2]
	}

	if err := run(dirName, outDir, log); err != nil {
		log.Error("summarizing failed", "in", dirName, "out", outDir, "err", err)
		os.Exit(1)
	}
}

// run writes outDir/summary.csv from the seed directories below dirName.
func run(dirName, outDir string, log *slog.Logger) error {
	overviews, err := loadOverviews(dirName)
	if err != nil {
		return fmt.Errorf("loading results: %w", err)
	}
	log.Info("results loaded", "seeds", len(overviews))

	if err := file.EnsureOutPath(outDir); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	outFile, err := os.Create(filepath.Join(outDir, "summary.csv"))
	if err != nil {
		return fmt.Errorf("creating summary: %w", err)
	}
	err = writeSummary(summarize(overviews), outFile)
	if closeErr := outFile.Close(); err == nil {
		err = closeErr
	}
	return err
}

// loadOverviews reads dir/*/results.json, seed directories without results are skipped.
func loadOverviews(dirName string) ([]*stats.Overview, error) {
	entries, err := os.ReadDir(dirName)
	if err != nil {
		return nil, err
	}
	overviews := make([]*stats.Overview, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		resultFileName := filepath.Join(dirName, entry.Name(), "results.json")
		if !file.FileExists(resultFileName) {
			continue
		}
		content, err := os.ReadFile(resultFileName)
		if err != nil {
			return nil, err
		}
		var overview stats.Overview
		if err := json.Unmarshal(content, &overview); err != nil {
			return nil, fmt.Errorf("parsing %v: %w", resultFileName, err)
		}
		overviews = append(overviews, &overview)
	}
	if len(overviews) == 0 {
		return nil, fmt.Errorf("no results.json below %v", dirName)
	}
	sort.Slice(overviews, func(i, j int) bool { return overviews[i].Seed < overviews[j].Seed })
	return overviews, nil
}

type key struct {
	family interfaces.FamilyKind
	rule   interfaces.RuleKind
	index  int
}

type row struct {
	key
	point  interfaces.GamePoint
	seeds  int
	mean   float64
	stdDev float64
}

// summarize groups the curve points of all seeds, rows keep the order of the first seed.
func summarize(overviews []*stats.Overview) []row {
	order := make([]key, 0)
	points := make(map[key]interfaces.GamePoint)
	means := make(map[key][]float64)
	for _, overview := range overviews {
		for _, curve := range overview.Curves {
			for i, s := range curve.Summaries {
				k := key{family: curve.Family, rule: curve.Rule, index: i}
				if _, ok := means[k]; !ok {
					order = append(order, k)
					points[k] = s.Point
				}
				means[k] = append(means[k], s.Mean)
			}
		}
	}

	rows := make([]row, 0, len(order))
	for _, k := range order {
		r := row{key: k, point: points[k], seeds: len(means[k])}
		if r.seeds > 1 {
			r.mean, r.stdDev = stat.MeanStdDev(means[k], nil)
		} else {
			r.mean = means[k][0]
		}
		rows = append(rows, r)
	}
	return rows
}

func writeSummary(rows []row, writer io.Writer) error {
	// write header
	if _, err := fmt.Fprintf(writer, "%v ; %v ; %v ; %v ; %v ; %v ; %v ; %v\n", "family", "rule", "index", "t", "s", "seeds", "mean", "sd"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(writer, "%v ; %v ; %v ; %v ; %v ; %v ; %v ; %v\n", r.family, r.rule, r.index, convert(r.point.T), convert(r.point.S), r.seeds, convert(r.mean), convert(r.stdDev)); err != nil {
			return err
		}
	}
	return nil
}

// convert writes floats with a decimal comma for spreadsheet imports
func convert(v interface{}) string {
	switch v.(type) {
	case float64, float32:
		temp := fmt.Sprintf("%f", v)
		return strings.Replace(temp, ".", ",", -1)
	default:
		return fmt.Sprintf("%v", v)
	}
}

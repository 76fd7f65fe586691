package main

import (
	"bytes"
	"evogamesim/interfaces"
	"evogamesim/util/logger"
	"evogamesim/montecarlo"
	"evogamesim/network"
	"evogamesim/util/file"
	"evogamesim/util/stats"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func writeSeed(t *testing.T, dir string, seed uint64, means ...float64) {
	t.Helper()
	config := file.DefaultConfig()
	config.CSeed = seed
	o := stats.NewOverview(config, network.Summary{Type: "complete", Nodes: 4, Edges: 6})
	summaries := make([]*montecarlo.Summary, 0, len(means))
	for i, mean := range means {
		summaries = append(summaries, &montecarlo.Summary{Point: interfaces.GamePoint{T: 1 + float64(i), S: 0}, Rule: interfaces.RULE_MORAN, Mean: mean})
	}
	o.AddCurve(interfaces.FAMILY_WEAK_PRISONERS_DILEMMA, interfaces.RULE_MORAN, summaries)

	seedDir := filepath.Join(dir, strconv.FormatUint(seed, 10))
	if err := os.MkdirAll(seedDir, 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(seedDir, "results.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := stats.PrintOverview(o, f); err != nil {
		t.Fatal(err)
	}
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, 2, 0.75, 1)
	writeSeed(t, dir, 1, 0.25)
	// directories without results are ignored
	if err := os.MkdirAll(filepath.Join(dir, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	overviews, err := loadOverviews(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(overviews) != 2 || overviews[0].Seed != 1 {
		t.Fatalf("got %d overviews, first seed %v", len(overviews), overviews[0].Seed)
	}

	rows := summarize(overviews)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].seeds != 2 || rows[0].mean != 0.5 {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].seeds != 1 || rows[1].mean != 1 || rows[1].stdDev != 0 {
		t.Errorf("second row = %+v", rows[1])
	}

	var buf bytes.Buffer
	if err := writeSummary(rows, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := "weakPrisonersDilemma ; moran ; 0 ; 1,000000 ; 0,000000 ; 2 ; 0,500000 ; 0,353553"
	if lines[1] != want {
		t.Errorf("line = %q, want %q", lines[1], want)
	}
}

func TestLoadOverviews_Empty(t *testing.T) {
	if _, err := loadOverviews(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without results")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, 1, 0.25, 0.5)
	outDir := filepath.Join(t.TempDir(), "summary")
	log := logger.NewSlog(io.Discard, "info")

	if err := run(dir, outDir, log); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(filepath.Join(outDir, "summary.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(string(content)), "\n"); len(lines) != 3 {
		t.Errorf("summary.csv has %d lines, want header and 2 rows:\n%s", len(lines), content)
	}

	if err := run(t.TempDir(), outDir, log); err == nil {
		t.Error("expected an error for a directory without results")
	}
}

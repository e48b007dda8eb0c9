package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/keyframer/internal/config"
	"github.com/ivlev/keyframer/internal/preview"
	"github.com/ivlev/keyframer/internal/schedule"
	"github.com/ivlev/keyframer/internal/source"
	"github.com/ivlev/keyframer/internal/system"
)

func main() {
	// Create the working directories if missing
	for _, d := range []string{"schedules", "output"} {
		os.MkdirAll(d, 0755)
	}

	schedulePtr := flag.String("schedule", "", "Path to a schedule YAML (default: newest file in schedules/)")
	inputPtr := flag.String("input", "", "PDF or image folder supplying the frame count")
	framesPtr := flag.Int("frames", -1, "Frame count of the target batch (-1 = unknown)")
	indexesPtr := flag.String("indexes", "", "One-shot index expression, e.g. \"0, 5:10=0.5, -1=0.2\"")
	curvePtr := flag.Bool("curve", false, "One-shot curve mode (uses -from, -to, -strength-from, -strength-to, -shape, -revert)")
	fromPtr := flag.Int("from", 0, "Curve window start frame")
	toPtr := flag.Int("to", 0, "Curve window end frame (exclusive)")
	strengthFromPtr := flag.Float64("strength-from", 1.0, "Curve start strength")
	strengthToPtr := flag.Float64("strength-to", 1.0, "Curve end strength")
	shapePtr := flag.String("shape", "linear", "Curve shape: linear, ease-in, ease-out, ease-in-out")
	revertPtr := flag.Bool("revert", false, "Mirror the curve back to its start at the midpoint")
	outputPtr := flag.String("output", "", "Path for the resolved strengths YAML (default: generated in output/)")
	previewPtr := flag.String("preview", "", "Path for a PNG strength chart (per track)")
	previewWPtr := flag.Int("preview-width", 960, "Preview width")
	previewHPtr := flag.Int("preview-height", 540, "Preview height")
	statsPtr := flag.Bool("stats", false, "Print an evaluation report")

	flag.Parse()

	cfg := &config.Config{
		SchedulePath:     *schedulePtr,
		InputPath:        *inputPtr,
		FrameCount:       *framesPtr,
		OutputPath:       *outputPtr,
		PreviewPath:      *previewPtr,
		PreviewW:         *previewWPtr,
		PreviewH:         *previewHPtr,
		ShowStats:        *statsPtr,
		Indexes:          *indexesPtr,
		CurveWindow:      *curvePtr,
		From:             *fromPtr,
		ToExcl:           *toPtr,
		StrengthFrom:     *strengthFromPtr,
		StrengthTo:       *strengthToPtr,
		Shape:            *shapePtr,
		RevertAtMidpoint: *revertPtr,
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[-] Error: %v", err)
	}
}

func run(cfg *config.Config) error {
	startTime := time.Now()

	frameCount, err := resolveFrameCount(cfg)
	if err != nil {
		return err
	}
	if frameCount >= 0 {
		fmt.Printf("[*] Frame count: %d\n", frameCount)
	} else {
		fmt.Println("[*] Frame count unknown; negative indices and range bounds are disabled")
	}

	sched, err := buildSchedule(cfg)
	if err != nil {
		return err
	}

	results, err := schedule.Evaluate(sched, frameCount)
	if err != nil {
		return err
	}
	evalTime := time.Since(startTime)

	totalKeyframes := 0
	for _, res := range results {
		keys := res.Keys.Sorted()
		totalKeyframes += len(keys)
		fmt.Printf("[*] Track %s: %d keyframes\n", res.Track, len(keys))
		for _, kf := range keys {
			fmt.Printf("    keyframe %d:%.4f\n", kf.Index, kf.Strength)
		}
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		outputPath = filepath.Join("output", fmt.Sprintf("strengths_%s.yaml", timestamp))
	}
	if err := schedule.WriteResolved(schedule.Resolve(results), outputPath); err != nil {
		return fmt.Errorf("failed to write resolved strengths: %w", err)
	}
	fmt.Printf("[+++] Done! Result: %s\n", outputPath)

	if cfg.PreviewPath != "" {
		if err := writePreviews(cfg, results, frameCount); err != nil {
			return err
		}
	}

	if cfg.ShowStats {
		report := fmt.Sprintf(
			"--- [EVALUATION REPORT] ---\n"+
				"Tracks: %d\n"+
				"Keyframes: %d\n"+
				"Evaluation: %.3fs\n"+
				"Total Time: %.3fs\n",
			len(results), totalKeyframes, evalTime.Seconds(), time.Since(startTime).Seconds(),
		)
		if rss, err := system.ProcessRSS(); err == nil {
			report += fmt.Sprintf("Memory (RSS): %.1f MiB\n", rss)
		}
		report += "---------------------------\n"
		fmt.Print(report)
	}

	return nil
}

// resolveFrameCount prefers a concrete source over the -frames flag
func resolveFrameCount(cfg *config.Config) (int, error) {
	if cfg.InputPath == "" {
		return cfg.FrameCount, nil
	}

	var src source.Source
	var err error
	if strings.HasSuffix(strings.ToLower(cfg.InputPath), ".pdf") {
		src, err = source.NewFitzPDFSource(cfg.InputPath)
	} else {
		src, err = source.NewImageSource(cfg.InputPath)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	count := src.FrameCount()
	if count == 0 {
		return 0, fmt.Errorf("source %s has no frames", cfg.InputPath)
	}
	fmt.Printf("[*] Source: %s\n", cfg.InputPath)
	return count, nil
}

// buildSchedule uses the one-shot flags when given, otherwise loads a
// schedule file
func buildSchedule(cfg *config.Config) (*schedule.Schedule, error) {
	var steps []schedule.Step
	if cfg.Indexes != "" {
		steps = append(steps, schedule.Step{Kind: "indexes", Indexes: cfg.Indexes})
	}
	if cfg.CurveWindow {
		steps = append(steps, schedule.Step{
			Kind:             "curve",
			From:             cfg.From,
			ToExcl:           cfg.ToExcl,
			StrengthFrom:     cfg.StrengthFrom,
			StrengthTo:       cfg.StrengthTo,
			Shape:            cfg.Shape,
			RevertAtMidpoint: cfg.RevertAtMidpoint,
		})
	}
	if len(steps) > 0 {
		return &schedule.Schedule{
			Version: "1.0",
			Tracks:  []schedule.Track{{Name: "cli", Steps: steps}},
		}, nil
	}

	path := cfg.SchedulePath
	if path == "" {
		latest, err := system.FindLatestSchedule("schedules")
		if err != nil {
			return nil, fmt.Errorf("%v; pass -schedule, -indexes or -curve", err)
		}
		path = latest
		fmt.Printf("[*] Using schedule: %s\n", path)
	}

	return schedule.ReadSchedule(path)
}

// writePreviews renders one chart per track. With several tracks the track
// name is appended to the file name.
func writePreviews(cfg *config.Config, results []schedule.Result, frameCount int) error {
	for _, res := range results {
		path := cfg.PreviewPath
		if len(results) > 1 {
			ext := filepath.Ext(path)
			path = fmt.Sprintf("%s_%s%s", strings.TrimSuffix(path, ext), res.Track, ext)
		}

		img := preview.Render(res.Track, res.Keys, frameCount, cfg.PreviewW, cfg.PreviewH)
		if err := preview.WritePNG(img, path); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		fmt.Printf("[*] Preview: %s\n", path)
	}
	return nil
}

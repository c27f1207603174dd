package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	bilingual "github.com/goliatone/go-bilingual"
)

func main() {
	root := flag.String("root", "content", "content tree to inspect")
	out := flag.String("out", "dist", "artifact output directory")
	baseURL := flag.String("base-url", "", "absolute URL base for sitemap and twins")
	build := flag.Bool("build", false, "generate artifacts instead of only validating")
	flag.Parse()

	cfg := bilingual.DefaultConfig()
	cfg.Content.Root = *root
	cfg.Generator.Enabled = *build
	cfg.Generator.OutputDir = *out
	cfg.Site.BaseURL = *baseURL
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "console"

	module, err := bilingual.New(cfg)
	if err != nil {
		log.Fatalf("bilingual: %v", err)
	}

	ctx := context.Background()

	if args := flag.Args(); len(args) == 2 && args[0] == "translate" {
		meta := module.NewPathMetadata(args[1])
		payload, _ := json.MarshalIndent(meta, "", "  ")
		fmt.Println(string(payload))
		return
	}

	if *build {
		result, err := module.BuildArtifacts(ctx)
		if err != nil {
			log.Fatalf("build: %v", err)
		}
		fmt.Printf("wrote %d twins (%d unchanged) to %s\n", result.TwinsWritten, result.TwinsSkipped, result.OutputDir)
		printSummary(result.Report)
		if !result.Report.Clean() {
			os.Exit(1)
		}
		return
	}

	report, err := module.ValidateParity(ctx, "")
	if err != nil {
		log.Fatalf("validate: %v", err)
	}
	printSummary(report)
	if !report.Clean() {
		os.Exit(1)
	}
}

func printSummary(report bilingual.Report) {
	fmt.Printf("pages: %d\n", report.Summary.Total)
	fmt.Printf("  paired-valid:          %d\n", report.Summary.PairedValid)
	fmt.Printf("  paired-invalid:        %d\n", report.Summary.PairedInvalid)
	fmt.Printf("  orphan-english:        %d\n", report.Summary.OrphanEnglish)
	fmt.Printf("  orphan-spanish:        %d\n", report.Summary.OrphanSpanish)
	fmt.Printf("  non-parity-designated: %d\n", report.Summary.NonParity)
	fmt.Printf("  inspection-failed:     %d\n", report.Summary.InspectionFailed)

	for _, page := range report.Pages {
		if page.Classification == bilingual.ClassificationPairedValid {
			continue
		}
		fmt.Printf("%s: %s\n", page.Path, page.Classification)
		for _, violation := range page.Violations {
			fmt.Printf("  - %s\n", violation)
		}
	}
}

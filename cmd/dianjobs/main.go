package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"dianjobs/internal"
	"dianjobs/internal/ai"
	"dianjobs/internal/config"
	"dianjobs/internal/dataset"
	"dianjobs/internal/pipeline"
	"dianjobs/internal/source"
	"dianjobs/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	ctx := context.Background()
	cache := pipeline.NewCache(time.Duration(cfg.CacheTTLMinutes) * time.Minute)

	cmd := os.Args[1]
	switch cmd {
	case "ingest":
		records, origin, err := loadNormalized(ctx, cfg, db, cache)
		must(err)
		fmt.Printf("ingest done origin=%s rows=%d\n", origin, len(records))
	case "snapshot:sync":
		records, err := source.NewRemoteClient(cfg).FetchAll(ctx)
		must(err)
		must(db.ReplaceSnapshot(records))
		fmt.Printf("snapshot sync complete: %d rows\n", len(records))
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		records, origin, err := loadNormalized(ctx, cfg, db, cache)
		must(err)
		must(pipeline.ExportRecordsToXLSX(records, *out))
		fmt.Printf("exported %d rows (origin=%s) to %s\n", len(records), origin, *out)
	case "stats":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		filter := bindFilterFlags(fs)
		_ = fs.Parse(os.Args[2:])
		records, origin, err := loadNormalized(ctx, cfg, db, cache)
		must(err)
		filtered := filter().Apply(records)
		fmt.Printf("origin=%s rows=%d filtered=%d\n\n", origin, len(records), len(filtered))
		fmt.Println(dataset.Summary(filtered))
		points := dataset.MapPoints(filtered)
		fmt.Printf("\nUbicaciones en el mapa: %d\n", len(points))
	case "summary":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		filter := bindFilterFlags(fs)
		_ = fs.Parse(os.Args[2:])
		records, _, err := loadNormalized(ctx, cfg, db, cache)
		must(err)
		filtered := filter().Apply(records)
		assistant, err := ai.New(ctx, cfg)
		must(err)
		answer, err := assistant.Summarize(ctx, dataset.Summary(filtered))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(answer)
	case "ask":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		question := fs.String("q", "", "question about the dataset")
		filter := bindFilterFlags(fs)
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*question) == "" {
			must(fmt.Errorf("--q is required"))
		}
		records, _, err := loadNormalized(ctx, cfg, db, cache)
		must(err)
		filtered := filter().Apply(records)
		assistant, err := ai.New(ctx, cfg)
		must(err)
		answer, err := assistant.Ask(ctx, *question, dataset.Summary(filtered))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(answer)
	default:
		usage()
		os.Exit(1)
	}
}

func loadNormalized(ctx context.Context, cfg config.Config, db *storage.DB, cache *pipeline.Cache) ([]internal.NormalizedRecord, string, error) {
	if records, ok := cache.Get(); ok {
		return records, "cache", nil
	}

	start := time.Now()
	raw, origin, err := source.NewService(cfg, db).Load(ctx)
	if err != nil {
		return nil, "", err
	}
	records := pipeline.Normalize(raw)
	cache.Set(records)

	resolved := 0
	for _, rec := range records {
		if rec.Latitude != nil {
			resolved++
		}
	}
	_ = db.InsertRun(traceID(), origin,
		map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
		map[string]int{"rowsIn": len(raw), "rowsOut": len(records), "resolvedCities": resolved})

	return records, origin, nil
}

// bindFilterFlags registers the filter flags and returns a closure that
// materializes the Filter after parsing.
func bindFilterFlags(fs *flag.FlagSet) func() dataset.Filter {
	city := fs.String("city", "", "comma-separated city filter")
	category := fs.String("category", "", "comma-separated category filter")
	process := fs.String("process", "", "comma-separated process id filter")
	family := fs.String("family", "", "comma-separated job family filter")
	study := fs.String("study", "", "comma-separated study code filter")
	minSalary := fs.Float64("min-salary", 0, "minimum salary")
	maxSalary := fs.Float64("max-salary", 0, "maximum salary, 0 = unbounded")

	return func() dataset.Filter {
		return dataset.Filter{
			Cities:      splitList(*city),
			Categories:  splitList(*category),
			Processes:   splitList(*process),
			JobFamilies: splitList(*family),
			StudyCodes:  splitList(*study),
			MinSalary:   *minSalary,
			MaxSalary:   *maxSalary,
		}
	}
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

func usage() {
	fmt.Println("usage: dianjobs <command>")
	fmt.Println("commands:")
	fmt.Println("  ingest")
	fmt.Println("  snapshot:sync")
	fmt.Println("  export:xlsx --out=./out/empleos.xlsx")
	fmt.Println("  stats [--city=...] [--family=...] [--min-salary=N] [--max-salary=N]")
	fmt.Println("  summary [filter flags]")
	fmt.Println("  ask --q=\"...\" [filter flags]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/contactkeval/option-screener/internal/calendar"
	"github.com/contactkeval/option-screener/internal/data"
	"github.com/contactkeval/option-screener/internal/history"
	"github.com/contactkeval/option-screener/internal/logger"
	"github.com/contactkeval/option-screener/internal/report"
	"github.com/contactkeval/option-screener/internal/screen"
)

func main() {
	configPath := flag.String("config", "configs/screener.json", "path to JSON config")
	dateStr := flag.String("date", "", "as-of date override (YYYY-MM-DD, default today)")
	rest := flag.Bool("rest", false, "run as REST server (accept screen jobs)")
	port := flag.String("port", ":8080", "REST server listen address")
	verbosity := flag.Int("v", -1, "log verbosity override (0=errors,1=info,2=debug,3=trace)")
	flag.Parse()

	// .env carries API keys; absence is fine, the synthetic provider
	// covers offline runs.
	_ = godotenv.Load()

	cfgData, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	var cfg screen.Config
	if err := json.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.HistoryDB == "" {
		cfg.HistoryDB = "data/historical_prices.db"
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	logger.SetVerbosity(cfg.Verbosity)

	asOf := time.Now().UTC()
	if *dateStr != "" {
		asOf, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.Fatalf("invalid -date: %v", err)
		}
	}

	prov := data.GetProvider()

	store, err := history.OpenSQLiteStore(cfg.HistoryDB)
	if err != nil {
		log.Fatalf("opening history store: %v", err)
	}
	defer store.Close()

	engine := screen.NewEngine(&cfg, prov, store, calendar.NewNYSE())

	if *rest {
		mux := http.NewServeMux()
		mux.HandleFunc("/run", func(w http.ResponseWriter, r *http.Request) {
			logger.Infof("received /run request")
			res, err := engine.Run(time.Now().UTC())
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(res)
		})
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
		logger.Infof("starting REST server on %s", *port)
		log.Fatal(http.ListenAndServe(*port, mux))
		return
	}

	start := time.Now()
	res, err := engine.Run(asOf)
	if err != nil {
		log.Fatalf("screen failed: %v", err)
	}
	if res.Skipped {
		logger.Infof("not a trading day, skipping")
		return
	}

	day, _ := time.Parse("2006-01-02", res.AsOf)
	if err := report.WriteCSV(res.Candidates, cfg.OutputDir, day); err != nil {
		log.Fatalf("writing csv report: %v", err)
	}
	_ = report.WriteJSON(res, cfg.OutputDir, day)
	logger.Infof("finished in %v, wrote %d candidates to %s (%d symbols failed)",
		time.Since(start), len(res.Candidates), report.CSVPath(cfg.OutputDir, day), len(res.Failures))
}

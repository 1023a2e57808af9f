package convert_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"deckport/internal/convert"
	"deckport/internal/logging"
	"deckport/internal/lookup/scryfall"
	"deckport/internal/services"
	"deckport/internal/testsupport"
)

const moxfieldFixture = `Count,Name,Edition,Condition,Language,Foil,Tags,Last Modified,Collector Number,Alter,Proxy,Purchase Price
4,Reaper King,shm,Near Mint,English,,,2024-01-01,260,False,False,1.25
1,Phantom Dreadnought,zzz,Near Mint,English,,,2024-01-01,7,False,False,
`

// catalogServer resolves the Reaper King printing and reports everything
// else not found, mirroring the collection endpoint's response shape.
func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/collection" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req struct {
			Identifiers []scryfall.Identifier `json:"identifiers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode collection request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resp := struct {
			Object   string                `json:"object"`
			Data     []scryfall.Card       `json:"data"`
			NotFound []scryfall.Identifier `json:"not_found"`
		}{Object: "list"}
		for _, id := range req.Identifiers {
			if id.Set == "shm" && id.CollectorNumber == "260" {
				resp.Data = append(resp.Data, scryfall.Card{
					ID:              "11111111-2222-3333-4444-555555555555",
					Name:            "Reaper King",
					Lang:            "en",
					Set:             "shm",
					SetName:         "Shadowmoor",
					CollectorNumber: "260",
					MultiverseIDs:   []int64{158695},
					MTGOID:          79038,
					Rarity:          "rare",
				})
				continue
			}
			resp.NotFound = append(resp.NotFound, id)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode collection response: %v", err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunConvertsInventoryEndToEnd(t *testing.T) {
	server := catalogServer(t)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(server.URL))

	dir := t.TempDir()
	input := testsupport.WriteFile(t, filepath.Join(dir, "collection.csv"), moxfieldFixture)
	output := filepath.Join(dir, "out.csv")

	var percents []float64
	conv, err := convert.New(cfg, logging.NewNop(), convert.WithProgress(func(percent float64, stage string) {
		percents = append(percents, percent)
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report, err := conv.Run(context.Background(), convert.Request{InputPath: input, OutputPath: output})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Format.ID != "moxfield" {
		t.Errorf("Format.ID = %q, want moxfield", report.Format.ID)
	}
	if report.FormatSource != "headers" {
		t.Errorf("FormatSource = %q, want headers", report.FormatSource)
	}
	if report.Rows != 2 || report.Resolved != 1 || report.Failed != 1 {
		t.Errorf("counts = rows %d resolved %d failed %d, want 2/1/1",
			report.Rows, report.Resolved, report.Failed)
	}
	if report.StatusCounts["ok"] != 1 || report.StatusCounts["not_found"] != 1 {
		t.Errorf("StatusCounts = %v", report.StatusCounts)
	}
	if report.MethodCounts["set_number"] != 1 {
		t.Errorf("MethodCounts = %v, want one set_number resolution", report.MethodCounts)
	}
	if report.RunID == "" {
		t.Error("RunID is empty")
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("output has %d records, want header + 2 rows", len(records))
	}
	// Failures sort before successes.
	if records[1][1] != "Phantom Dreadnought" || records[2][1] != "Reaper King" {
		t.Errorf("row order = %q, %q", records[1][1], records[2][1])
	}

	if len(percents) == 0 {
		t.Fatal("no progress reported")
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] <= percents[i-1] {
			t.Fatalf("progress not monotonic: %v", percents)
		}
	}
	if final := percents[len(percents)-1]; final != 100 {
		t.Errorf("final progress = %v, want 100", final)
	}
}

func TestRunRejectsUnknownFormatID(t *testing.T) {
	server := catalogServer(t)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(server.URL))

	dir := t.TempDir()
	input := testsupport.WriteFile(t, filepath.Join(dir, "collection.csv"), moxfieldFixture)

	conv, err := convert.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = conv.Run(context.Background(), convert.Request{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "out.csv"),
		FormatID:   "nope",
	})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
}

func TestRunFailsPreflightForMissingInput(t *testing.T) {
	server := catalogServer(t)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(server.URL))

	dir := t.TempDir()
	conv, err := convert.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = conv.Run(context.Background(), convert.Request{
		InputPath:  filepath.Join(dir, "absent.csv"),
		OutputPath: filepath.Join(dir, "out.csv"),
	})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error from preflight", err)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	withDir := convert.DefaultOutputPath(cfg, "/data/in/collection.csv")
	if got, want := withDir, filepath.Join(cfg.Paths.OutputDir, "collection-converted.csv"); got != want {
		t.Errorf("with output dir = %q, want %q", got, want)
	}

	cfg.Paths.OutputDir = ""
	beside := convert.DefaultOutputPath(cfg, "/data/in/collection.csv")
	if beside != "/data/in/collection-converted.csv" {
		t.Errorf("beside input = %q", beside)
	}
}

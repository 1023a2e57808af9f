package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deckport/internal/lookup/scryfall"
	"deckport/internal/testsupport"
)

const moxfieldFixture = `Count,Name,Edition,Condition,Language,Foil,Tags,Last Modified,Collector Number,Alter,Proxy,Purchase Price
4,Reaper King,shm,Near Mint,English,,,2024-01-01,260,False,False,1.25
1,Phantom Dreadnought,zzz,Near Mint,English,,,2024-01-01,7,False,False,
`

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/collection" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req struct {
			Identifiers []scryfall.Identifier `json:"identifiers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
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
					Rarity:          "rare",
				})
				continue
			}
			resp.NotFound = append(resp.NotFound, id)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()
	base := t.TempDir()
	content := fmt.Sprintf(`[paths]
log_dir = %q

[scryfall]
base_url = %q
request_delay_ms = 1

[logging]
level = "error"
`, filepath.Join(base, "logs"), baseURL)
	return testsupport.WriteFile(t, filepath.Join(base, "config.toml"), content)
}

func TestCLIFormatsCommand(t *testing.T) {
	out, _, err := runCLI(t, "formats")
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	for _, want := range []string{"moxfield", "deckbox", "dek", "signature"} {
		if !strings.Contains(out, want) {
			t.Errorf("formats output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIDetectCommand(t *testing.T) {
	input := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "collection.csv"), moxfieldFixture)
	out, _, err := runCLI(t, "detect", input)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "Detected: moxfield") {
		t.Errorf("detect output missing detection result:\n%s", out)
	}
	if !strings.Contains(out, "deckbox") {
		t.Errorf("detect output should score every format:\n%s", out)
	}
}

func TestCLIDetectCommandUndetectable(t *testing.T) {
	input := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "junk.csv"), "alpha,beta\n1,2\n")
	out, _, err := runCLI(t, "detect", input)
	if err == nil {
		t.Fatal("expected error for undetectable headers")
	}
	if !strings.Contains(out, "floor") {
		t.Errorf("detect output should mention the score floor:\n%s", out)
	}
}

func TestCLIConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "deckport", "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Errorf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "[scryfall]") || !strings.Contains(out, target) {
		t.Errorf("config show output missing sections or path:\n%s", out)
	}
}

func TestCLIConvertCommand(t *testing.T) {
	server := newCatalogServer(t)
	configPath := writeTestConfig(t, server.URL)

	dir := t.TempDir()
	input := testsupport.WriteFile(t, filepath.Join(dir, "collection.csv"), moxfieldFixture)
	output := filepath.Join(dir, "out.csv")

	out, _, err := runCLI(t, "--config", configPath, "convert", input, "-o", output)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "moxfield") {
		t.Errorf("convert output missing format:\n%s", out)
	}
	if !strings.Contains(out, "Resolved") || !strings.Contains(out, "Failed") {
		t.Errorf("convert output missing summary lines:\n%s", out)
	}
	if !strings.Contains(out, "set_number") || !strings.Contains(out, "not_found") {
		t.Errorf("convert output missing breakdown tables:\n%s", out)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestCLIConvertCommandUnknownFormat(t *testing.T) {
	server := newCatalogServer(t)
	configPath := writeTestConfig(t, server.URL)

	dir := t.TempDir()
	input := testsupport.WriteFile(t, filepath.Join(dir, "collection.csv"), moxfieldFixture)

	_, _, err := runCLI(t, "--config", configPath, "convert", input, "--format", "nope")
	if err == nil {
		t.Fatal("expected error for unknown format id")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("err = %v, want unknown-format message", err)
	}
}

func TestCLIConvertCommandRejectsNegativeDelay(t *testing.T) {
	server := newCatalogServer(t)
	configPath := writeTestConfig(t, server.URL)

	input := testsupport.WriteFile(t, filepath.Join(t.TempDir(), "collection.csv"), moxfieldFixture)
	_, _, err := runCLI(t, "--config", configPath, "convert", input, "--delay", "-5")
	if err == nil {
		t.Fatal("expected error for negative delay")
	}
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"deckport/internal/lookup"
	"deckport/internal/services"
)

// Columns is the canonical output header, in order.
var Columns = []string{
	"Quantity",
	"Name",
	"Set Code",
	"Set Name",
	"Collector Number",
	"Language",
	"Foil",
	"Condition",
	"Scryfall ID",
	"Multiverse ID",
	"MTGO ID",
	"Rarity",
	"Purchase Price",
	"Status",
	"Confidence",
	"Method",
	"Warnings",
	"Source Row",
}

// Write serializes ordered outcomes to path as canonical CSV. A sibling
// .lock file guards against two invocations interleaving writes to the same
// output; the rows land via temp file and rename so readers never observe a
// partial file.
func Write(path string, outcomes []lookup.Outcome) error {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("output %s is locked by another conversion", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	if err := writeRows(tmp, outcomes); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}

func writeRows(f *os.File, outcomes []lookup.Outcome) error {
	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range outcomes {
		if err := w.Write(Record(&outcomes[i])); err != nil {
			return fmt.Errorf("write row %d: %w", outcomes[i].Row.SourceRow, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// Record renders one outcome as a CSV record matching Columns. Resolved rows
// report the matched printing's data; failed rows echo what the export
// supplied so nothing is lost.
func Record(o *lookup.Outcome) []string {
	row := &o.Row

	name := row.Name
	setCode := row.SetCode
	setName := row.SetName
	collector := row.CollectorNumber
	language := row.Language
	scryfallID := row.ScryfallID
	multiverse := formatID(row.MultiverseID)
	mtgoID := formatID(row.MTGOID)
	rarity := ""

	if o.Success() {
		card := o.Match
		name = card.Name
		setCode = card.Set
		setName = card.SetName
		collector = card.CollectorNumber
		language = card.Lang
		scryfallID = card.ID
		multiverse = ""
		if len(card.MultiverseIDs) > 0 {
			multiverse = formatID(card.MultiverseIDs[0])
		}
		mtgoID = formatID(card.MTGOID)
		rarity = card.Rarity
	}

	return []string{
		strconv.Itoa(row.Quantity),
		name,
		setCode,
		setName,
		collector,
		language,
		finish(row.Foil, row.Etched),
		row.Condition,
		scryfallID,
		multiverse,
		mtgoID,
		rarity,
		row.PurchasePrice,
		Status(o),
		o.Confidence.String(),
		string(o.Method),
		strings.Join(row.Warnings, "; "),
		strconv.Itoa(row.SourceRow),
	}
}

// Status labels an outcome for the Status column: a failure kind for failed
// rows, "warning" for resolved rows carrying notes, "ok" otherwise.
func Status(o *lookup.Outcome) string {
	switch {
	case !o.Success():
		return services.FailureKind(o.Err)
	case o.HasWarnings():
		return "warning"
	default:
		return "ok"
	}
}

func finish(foil, etched bool) string {
	switch {
	case etched:
		return "etched"
	case foil:
		return "foil"
	default:
		return ""
	}
}

func formatID(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

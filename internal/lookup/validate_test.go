package lookup

import (
	"strings"
	"testing"

	"deckport/internal/cards"
	"deckport/internal/lookup/scryfall"
)

func TestNameMatches(t *testing.T) {
	split := scryfall.Card{
		Name:   "Fire // Ice",
		Layout: "split",
		CardFaces: []scryfall.CardFace{
			{Name: "Fire"},
			{Name: "Ice"},
		},
	}
	printed := scryfall.Card{
		Name:        "Opt",
		PrintedName: "選択",
		Lang:        "ja",
	}

	tests := []struct {
		name string
		card *scryfall.Card
		in   string
		want bool
	}{
		{"full split name", &split, "Fire // Ice", true},
		{"front face", &split, "Fire", true},
		{"back face", &split, "ice", true},
		{"neither face", &split, "Water", false},
		{"plain name", &printed, "opt", true},
		{"printed translation", &printed, "選択", true},
		{"empty", &printed, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nameMatches(tt.in, tt.card); got != tt.want {
				t.Fatalf("nameMatches(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateChecksOnlySuppliedFields(t *testing.T) {
	card := scryfall.Card{
		ID:              "f2b9983e-20d4-4d12-9e2c-ec6d9a345787",
		Name:            "Reaper King",
		Set:             "shm",
		CollectorNumber: "260",
		MultiverseIDs:   []int64{153999},
		MTGOID:          79038,
	}

	tests := []struct {
		name string
		row  cards.Row
		want int
	}{
		{"all fields agree", cards.Row{Name: "Reaper King", SetCode: "shm", CollectorNumber: "260"}, 0},
		{"folded fields agree", cards.Row{Name: "  reaper king ", SetCode: "SHM", CollectorNumber: "0260"}, 0},
		{"unsupplied fields ignored", cards.Row{SetCode: "shm"}, 0},
		{"id supplies nothing checkable", cards.Row{ScryfallID: card.ID}, 0},
		{"wrong set and number", cards.Row{SetCode: "eve", CollectorNumber: "42"}, 2},
		{"wrong name alone rejects", cards.Row{Name: "Sliver Overlord", SetCode: "shm", CollectorNumber: "260"}, 1},
		{"wrong number alone rejects", cards.Row{Name: "Reaper King", CollectorNumber: "261"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validate(&tt.row, &card)
			if len(got) != tt.want {
				t.Fatalf("validate() = %v, want %d mismatches", got, tt.want)
			}
		})
	}
}

func TestValidateItemizesEachMismatch(t *testing.T) {
	card := scryfall.Card{Name: "Reaper King", Set: "shm", CollectorNumber: "260"}
	row := cards.Row{Name: "Opt", SetCode: "eve", CollectorNumber: "42"}

	mismatches := validate(&row, &card)
	if len(mismatches) != 3 {
		t.Fatalf("mismatches = %v, want one per supplied field", mismatches)
	}
	joined := strings.Join(mismatches, "; ")
	for _, fragment := range []string{"name", "set", "collector number"} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("mismatch list %q missing %q", joined, fragment)
		}
	}
}

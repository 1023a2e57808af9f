package cards

import "testing"

func TestEvidenceConfidence(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected Confidence
	}{
		{"scryfall id", Row{ScryfallID: "11111111-2222-3333-4444-555555555555"}, ConfidenceExact},
		{"multiverse id", Row{MultiverseID: 27166}, ConfidenceExact},
		{"mtgo id", Row{MTGOID: 79038, Name: "Reaper King"}, ConfidenceExact},
		{"set and collector number", Row{SetCode: "shm", CollectorNumber: "260"}, ConfidenceHigh},
		{"name and set code", Row{Name: "Reaper King", SetCode: "shm"}, ConfidenceMedium},
		{"name and set name", Row{Name: "Reaper King", SetName: "Shadowmoor"}, ConfidenceMedium},
		{"name only", Row{Name: "Reaper King"}, ConfidenceLow},
		{"name with collector number", Row{Name: "Reaper King", CollectorNumber: "260"}, ConfidenceLow},
		{"nothing", Row{Quantity: 4}, ConfidenceNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.EvidenceConfidence(); got != tt.expected {
				t.Fatalf("EvidenceConfidence() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConfidenceLower(t *testing.T) {
	tests := []struct {
		in       Confidence
		expected Confidence
	}{
		{ConfidenceExact, ConfidenceHigh},
		{ConfidenceHigh, ConfidenceMedium},
		{ConfidenceMedium, ConfidenceLow},
		{ConfidenceLow, ConfidenceLow},
		{ConfidenceNone, ConfidenceNone},
	}
	for _, tt := range tests {
		if got := tt.in.Lower(); got != tt.expected {
			t.Errorf("%v.Lower() = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestConfidenceString(t *testing.T) {
	if ConfidenceExact.String() != "exact" || ConfidenceNone.String() != "none" {
		t.Fatal("unexpected confidence labels")
	}
}

func TestMethodCorrected(t *testing.T) {
	if got := MethodSetNumber.Corrected(); got != Method("set_number_corrected") {
		t.Fatalf("Corrected() = %q", got)
	}
	if got := MethodSetNumber.Corrected().Corrected(); got != Method("set_number_corrected") {
		t.Fatalf("double Corrected() = %q", got)
	}
	if got := MethodFailed.Corrected(); got != MethodFailed {
		t.Fatalf("failed method should not gain the tag, got %q", got)
	}
	if !MethodNameSet.Corrected().IsCorrected() {
		t.Fatal("IsCorrected() should report the tag")
	}
	if MethodNameSet.Corrected().Base() != MethodNameSet {
		t.Fatal("Base() should strip the tag")
	}
}

func TestAppendWarning(t *testing.T) {
	row := Row{}
	row.AppendWarning("  quantity missing, defaulted to 1 ")
	row.AppendWarning("")
	if len(row.Warnings) != 1 || row.Warnings[0] != "quantity missing, defaulted to 1" {
		t.Fatalf("unexpected warnings: %v", row.Warnings)
	}
}

func TestHasDirectID(t *testing.T) {
	if (&Row{Name: "Shock"}).HasDirectID() {
		t.Fatal("name-only row should not report a direct id")
	}
	if !(&Row{MTGOID: 79038}).HasDirectID() {
		t.Fatal("mtgo row should report a direct id")
	}
}

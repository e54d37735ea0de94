package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yeager/fedora-l10n/internal/model"
)

var sampleRows = []model.ProjectOverview{
	{Project: model.ProjectSummary{Slug: "anaconda", Name: "Anaconda"}, TranslatedPercent: 92.5},
	{Project: model.ProjectSummary{Slug: "abrt", Name: "ABRT"}, TranslatedPercent: 30},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "slug,name,translated_percent" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "anaconda,Anaconda,92.5" {
		t.Errorf("Unexpected first row: %s", lines[1])
	}
	if lines[2] != "abrt,ABRT,30.0" {
		t.Errorf("Unexpected second row: %s", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRows); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if len(decoded) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(decoded))
	}
	if decoded[0]["slug"] != "anaconda" {
		t.Errorf("Unexpected first slug: %v", decoded[0]["slug"])
	}
	if decoded[0]["translated_percent"] != 92.5 {
		t.Errorf("Unexpected percentage: %v", decoded[0]["translated_percent"])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Expected empty array, got %s", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")

	if err := WriteFile(path, FormatCSV, sampleRows); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read back failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "slug,name,translated_percent") {
		t.Errorf("Unexpected file content: %s", data)
	}
}

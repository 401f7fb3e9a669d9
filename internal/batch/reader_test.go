package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestReader_InvalidFile(t *testing.T) {
	file := strings.NewReader("invalid file content")

	reader := NewReader(file, newTestLogger())
	ctx := context.Background()
	ch := reader.ReadAll(ctx)

	for record := range ch {
		if record.Error == nil {
			t.Errorf("expected parse error for invalid JSON, but got none")
		}
	}
}

func TestReader_ValidFile(t *testing.T) {
	inputFile := `{"id":"1","text":"Hemoglobin 10.2 g/dL"}
  {"id":"2","analysesTexts":["Glucose 130","Glucose 105"]}`

	file := strings.NewReader(inputFile)

	ctx := context.Background()
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(ctx)
	var records []InputRecord
	for record := range ch {
		if record.Error != nil {
			t.Errorf("Error reading the job record. Got: %s", record.Error)
		}
		records = append(records, record)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 job records. Got: %d", len(records))
	}
	if records[0].Job.Variant() != models.VariantSingle {
		t.Errorf("Expected first record to be single, got %s", records[0].Job.Variant())
	}
	if records[1].Job.Variant() != models.VariantCompare {
		t.Errorf("Expected second record to be compare, got %s", records[1].Job.Variant())
	}
}

func TestReader_ContextCancellation(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, `{"id":"1","text":"report"}`)
	}
	file := strings.NewReader(strings.Join(lines, "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(ctx)
	count := 0
	for range ch {
		count++
		if count == 5 {
			cancel()
			break
		}
	}

	if count >= 100 {
		t.Errorf("expected early cancellation, but read all records")
	}
}

func TestReader_LineNumbers(t *testing.T) {
	inputFile := `{"id":"1","text":"a"}

{"invalid json}
{"text":"b"}`

	file := strings.NewReader(inputFile)
	reader := NewReader(file, newTestLogger())

	ch := reader.ReadAll(context.Background())
	records := []InputRecord{}
	for record := range ch {
		records = append(records, record)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].LineNumber != 1 {
		t.Errorf("first record should be line 1, got %d", records[0].LineNumber)
	}
	if records[1].LineNumber != 3 || records[1].Error == nil {
		t.Errorf("error record should be line 3, got %d (err %v)", records[1].LineNumber, records[1].Error)
	}
	if records[2].LineNumber != 4 {
		t.Errorf("third record should be line 4, got %d", records[2].LineNumber)
	}
	if records[2].Job.ID != "line-4" {
		t.Errorf("expected generated id line-4, got %s", records[2].Job.ID)
	}
}

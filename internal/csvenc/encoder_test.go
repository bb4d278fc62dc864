// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package csvenc

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/omnaris/scan-service/internal/types"
)

func sampleScans() []*types.Scan {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	return []*types.Scan{
		{
			ID:        "scan-2",
			FormKey:   "barcode_location",
			Username:  "wanda",
			ScannedAt: at.Add(time.Hour),
			Payload: types.Payload{
				{Key: "barcode", Value: "456"},
				{Key: "location", Value: "aisle 4"},
			},
		},
		{
			ID:        "scan-1",
			FormKey:   "barcode_only",
			ScannedAt: at,
			Payload:   types.Payload{{Key: "barcode", Value: "123"}},
		},
	}
}

func TestEncodeHeader(t *testing.T) {
	out, err := Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d rows", len(records))
	}

	expected := []string{"ID", "Date", "Form", "User", "Data"}
	for i, col := range expected {
		if records[0][i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, records[0][i])
		}
	}
}

func TestEncodeRows(t *testing.T) {
	out, err := Encode(sampleScans())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(records))
	}

	first := records[1]
	if first[0] != "scan-2" {
		t.Errorf("input order must be preserved, got first row %q", first[0])
	}
	if first[1] != "2026-03-14T16:09:26Z" {
		t.Errorf("unexpected date rendering: %q", first[1])
	}
	if first[4] != "barcode: 456; location: aisle 4" {
		t.Errorf("unexpected data rendering: %q", first[4])
	}

	second := records[2]
	if second[3] != "Unknown" {
		t.Errorf("missing creator must render Unknown, got %q", second[3])
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode(sampleScans())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := Encode(sampleScans())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated encoding of the same input must be byte-identical")
	}
}

func TestEncodeQuotesEmbeddedDelimiters(t *testing.T) {
	scans := []*types.Scan{{
		ID:        "s",
		FormKey:   "barcode_only",
		Username:  "w",
		ScannedAt: time.Unix(0, 0).UTC(),
		Payload:   types.Payload{{Key: "barcode", Value: "a,b\nc"}},
	}}

	out, err := Encode(scans)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if records[1][4] != "barcode: a,b\nc" {
		t.Errorf("embedded delimiters must survive the round trip, got %q", records[1][4])
	}
}

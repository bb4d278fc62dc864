// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package csvenc serializes scan records to the CSV artifact downstream
// consumers depend on. The header row and field rendering are a bit-exact
// contract; callers pre-sort their input, Encode never reorders.
package csvenc

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"github.com/omnaris/scan-service/internal/types"
)

// Header is the fixed first row of every produced CSV.
var Header = []string{"ID", "Date", "Form", "User", "Data"}

// Encode renders the scans in input order. Dates are ISO-8601 UTC, the
// payload flattens to "key: value" pairs joined with "; " in payload order,
// and a missing creator renders as Unknown. Pure: no I/O, same input gives
// byte-identical output.
func Encode(scans []*types.Scan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, err
	}

	for _, s := range scans {
		username := s.Username
		if username == "" {
			username = "Unknown"
		}

		if err := w.Write([]string{
			s.ID,
			s.ScannedAt.UTC().Format(time.RFC3339),
			s.FormKey,
			username,
			flatten(s.Payload),
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func flatten(p types.Payload) string {
	pairs := make([]string, len(p))
	for i, f := range p {
		pairs[i] = f.Key + ": " + f.Value
	}
	return strings.Join(pairs, "; ")
}

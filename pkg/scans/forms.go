// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scans

// Form describes one capture layout. Field order is the order values are
// recorded and later rendered in.
type Form struct {
	Key    string   `json:"key"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

var forms = []Form{
	{Key: "barcode_only", Label: "Barcode only", Fields: []string{"barcode"}},
	{Key: "barcode_location", Label: "Barcode and location", Fields: []string{"barcode", "location"}},
}

func formByKey(key string) (Form, bool) {
	for _, f := range forms {
		if f.Key == key {
			return f, true
		}
	}
	return Form{}, false
}

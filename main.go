// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/omnaris/scan-service/cmd"

func main() {
	cmd.Execute()
}

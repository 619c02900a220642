// SPDX-License-Identifier: MPL-2.0

package main

import "wineceptor-cli/internal/cli"

func main() {
	cli.Execute()
}

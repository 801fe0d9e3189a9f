// SPDX-License-Identifier: MPL-2.0

package main

import cmd "gitauto-setup/cmd/gitauto-setup"

func main() {
	cmd.Execute()
}

// Command set-devnet-studio-dapp-id writes studioDappId into a JSON config
// file.
//
//	set-devnet-studio-dapp-id --file <path> --studio-dapp-id <uint>
package main

import (
	"io"
	"os"

	"configpatch/internal/patch"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return patch.Run(patch.SetStudioDappID, args, stdout, stderr)
}

// Command update-config-for-e2e prepares a JSON config file for the E2E
// suite: it writes studioDappId and replaces ipfsHeliaGateways with the
// given gateway.
//
//	update-config-for-e2e --file <path> --studio-dapp-id <uint> --ipfs-helia-gateway <url>
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
	return patch.Run(patch.UpdateConfigForE2E, args, stdout, stderr)
}

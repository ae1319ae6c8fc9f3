package patch

import (
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
)

const (
	flagFile             = "--file"
	flagStudioDappID     = "--studio-dapp-id"
	flagIPFSHeliaGateway = "--ipfs-helia-gateway"
)

// DappArgs holds the arguments every tool accepts.
type DappArgs struct {
	File         string `arg:"--file,required" placeholder:"<path>" help:"path to the JSON config file to patch"`
	StudioDappID string `arg:"--studio-dapp-id,required" placeholder:"<uint>" help:"studio dapp id to write"`
}

// Args is the full argument record. Tools that do not take a gateway leave
// IPFSHeliaGateway empty.
type Args struct {
	DappArgs
	IPFSHeliaGateway string `arg:"--ipfs-helia-gateway,required" placeholder:"<url>" help:"IPFS Helia gateway URL to write"`
}

// Tool describes one of the patch commands.
type Tool struct {
	Name    string
	Gateway bool // also sets ipfsHeliaGateways
}

var (
	SetStudioDappID    = Tool{Name: "set-devnet-studio-dapp-id"}
	UpdateConfigForE2E = Tool{Name: "update-config-for-e2e", Gateway: true}
)

// ScanArgs reads the flags the tool knows from argv. Each flag takes the
// token after it as its value, or "" when it is the last token. Unknown
// tokens are skipped and later occurrences of a flag overwrite earlier ones.
func (t Tool) ScanArgs(argv []string) Args {
	var args Args
	for i := 0; i < len(argv); i++ {
		var dst *string
		switch argv[i] {
		case flagFile:
			dst = &args.File
		case flagStudioDappID:
			dst = &args.StudioDappID
		case flagIPFSHeliaGateway:
			if t.Gateway {
				dst = &args.IPFSHeliaGateway
			}
		}
		if dst == nil {
			continue
		}
		*dst = ""
		if i+1 < len(argv) {
			*dst = argv[i+1]
		}
		i++
	}
	return args
}

// WriteUsage prints the tool's usage line, generated from the Args tags.
func (t Tool) WriteUsage(w io.Writer) error {
	var dest interface{} = &DappArgs{}
	if t.Gateway {
		dest = &Args{}
	}
	p, err := arg.NewParser(arg.Config{Program: t.Name}, dest)
	if err != nil {
		return fmt.Errorf("failed to build usage: %w", err)
	}
	p.WriteUsage(w)
	return nil
}

package patch

// Patch is the set of fields a tool writes into the config.
type Patch struct {
	StudioDappID DappID
	// IPFSHeliaGateways replaces the whole list when non-nil.
	IPFSHeliaGateways []string
}

// Validate checks the scanned arguments before any file is touched.
// Missing values come back as *UsageError, a malformed id as *DataError.
func (t Tool) Validate(args Args) (Patch, error) {
	var missing []string
	if args.File == "" {
		missing = append(missing, flagFile)
	}
	if args.StudioDappID == "" {
		missing = append(missing, flagStudioDappID)
	}
	if t.Gateway && args.IPFSHeliaGateway == "" {
		missing = append(missing, flagIPFSHeliaGateway)
	}
	if len(missing) > 0 {
		return Patch{}, &UsageError{Missing: missing}
	}

	id, err := ParseDappID(args.StudioDappID)
	if err != nil {
		return Patch{}, err
	}
	p := Patch{StudioDappID: id}
	if t.Gateway {
		p.IPFSHeliaGateways = []string{args.IPFSHeliaGateway}
	}
	return p, nil
}

// Summary describes the written values for the confirmation line.
func (p Patch) Summary() string {
	s := "studioDappId=" + p.StudioDappID.String()
	if len(p.IPFSHeliaGateways) > 0 {
		s += " and ipfsHeliaGateway=" + p.IPFSHeliaGateways[0]
	}
	return s
}

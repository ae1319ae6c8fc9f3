package patch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var dappIDPattern = regexp.MustCompile(`^\d+$`)

// DappID is a studio dapp id. The digit string is converted with
// double-precision semantics, so ids past 2^53 lose precision the same way
// the rest of the pipeline's JSON tooling would.
type DappID struct {
	digits string
	value  float64
}

// ParseDappID accepts one or more ASCII decimal digits and nothing else.
func ParseDappID(s string) (DappID, error) {
	if !dappIDPattern.MatchString(s) {
		return DappID{}, dataErrorf("invalid studio dapp id: %s", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return DappID{}, dataErrorf("studio dapp id out of range: %s", s)
	}
	return DappID{digits: s, value: v}, nil
}

// String renders the value the way a JavaScript number prints: plain
// integer digits below 1e21, exponent form from there on.
func (id DappID) String() string {
	if id.value < 1e21 {
		return strconv.FormatFloat(id.value, 'f', -1, 64)
	}
	return strconv.FormatFloat(id.value, 'e', -1, 64)
}

func (id DappID) MarshalJSON() ([]byte, error) {
	if id.digits == "" {
		return nil, fmt.Errorf("empty studio dapp id")
	}
	return []byte(id.String()), nil
}

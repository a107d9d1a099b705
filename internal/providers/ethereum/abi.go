package ethereum

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/feral-file/dao-indexer/internal/domain"
)

//go:embed dao_abi.json
var daoABIJSON []byte

// eventShapes lists the positional argument types each tracked event must declare
var eventShapes = map[domain.EventKind][]string{
	domain.EventKindProposalCreated:  {"uint256", "address", "string"},
	domain.EventKindVoted:            {"uint256", "address", "bool", "uint256"},
	domain.EventKindProposalExecuted: {"uint256", "address", "bool"},
}

// LoadABI returns the DAO contract ABI. An empty path selects the embedded ABI;
// otherwise the file may hold a bare ABI array or a compiler artifact with an "abi" field.
func LoadABI(path string) (abi.ABI, error) {
	data := daoABIJSON
	if path != "" {
		raw, err := os.ReadFile(path) //nolint:gosec,G304
		if err != nil {
			return abi.ABI{}, fmt.Errorf("failed to read ABI from %s: %w", path, err)
		}
		data = raw
	}

	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(data, &artifact); err == nil && len(artifact.ABI) > 0 {
		data = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}

	if err := validateABI(parsed); err != nil {
		return abi.ABI{}, err
	}

	return parsed, nil
}

// validateABI checks the three governance events exist with the argument types decoding relies on
func validateABI(parsed abi.ABI) error {
	for _, kind := range domain.EventKinds {
		shape := eventShapes[kind]
		event, ok := parsed.Events[string(kind)]
		if !ok {
			return fmt.Errorf("ABI has no %s event", kind)
		}
		if len(event.Inputs) != len(shape) {
			return fmt.Errorf("ABI event %s has %d inputs, want %d", kind, len(event.Inputs), len(shape))
		}
		for i, input := range event.Inputs {
			if input.Type.String() != shape[i] {
				return fmt.Errorf("ABI event %s input %d is %s, want %s", kind, i, input.Type.String(), shape[i])
			}
			if input.Name == "" {
				return fmt.Errorf("ABI event %s input %d is unnamed", kind, i)
			}
		}
	}
	return nil
}

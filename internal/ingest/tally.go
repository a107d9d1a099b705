package ingest

import (
	"fmt"
	"math/big"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/store"
)

// addVote returns the tally function adding amount to the side picked by support
func addVote(support bool, amount *big.Int) (store.TallyFunc, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: vote amount must be a non-negative integer", domain.ErrInvalidEvent)
	}

	return func(current store.Tally) (store.Tally, error) {
		next := store.Tally{
			For:     new(big.Int).Set(current.For),
			Against: new(big.Int).Set(current.Against),
		}
		if support {
			next.For.Add(next.For, amount)
		} else {
			next.Against.Add(next.Against, amount)
		}
		return next, nil
	}, nil
}

package corruptor

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/raseguard/raseguard/pkg/storage"
)

// Result reports exactly which fragment and share indexes an attack run deleted.
type Result struct {
	RecordID            string
	FragmentsDestroyed  []int
	SharesDestroyed     []int
}

// Attack deletes up to fragmentCount fragments and shareCount shares
// belonging to recordID, chosen uniformly at random from what is currently
// present. Counts larger than what exists are clamped rather than erroring,
// mirroring an attacker who destroys everything they can reach.
func Attack(backend storage.Backend, recordID string, fragmentCount, shareCount int) (*Result, error) {
	fragIndexes, err := storage.ListFragmentIndexes(backend, recordID)
	if err != nil {
		return nil, fmt.Errorf("corruptor: failed to list fragments: %w", err)
	}
	shareIndexes, err := storage.ListShareIndexes(backend, recordID)
	if err != nil {
		return nil, fmt.Errorf("corruptor: failed to list shares: %w", err)
	}

	victimFrags, err := pickRandom(fragIndexes, fragmentCount)
	if err != nil {
		return nil, err
	}
	victimShares, err := pickRandom(shareIndexes, shareCount)
	if err != nil {
		return nil, err
	}

	res := &Result{RecordID: recordID}
	for _, idx := range victimFrags {
		if err := storage.DeleteFragment(backend, recordID, idx); err != nil {
			return nil, fmt.Errorf("corruptor: failed to destroy fragment %d: %w", idx, err)
		}
		res.FragmentsDestroyed = append(res.FragmentsDestroyed, idx)
	}
	for _, idx := range victimShares {
		if err := storage.DeleteShare(backend, recordID, idx); err != nil {
			return nil, fmt.Errorf("corruptor: failed to destroy share %d: %w", idx, err)
		}
		res.SharesDestroyed = append(res.SharesDestroyed, idx)
	}
	return res, nil
}

// pickRandom returns up to n elements of pool chosen uniformly at random
// without replacement, via a CSPRNG Fisher-Yates partial shuffle.
func pickRandom(pool []int, n int) ([]int, error) {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil, nil
	}

	shuffled := make([]int, len(pool))
	copy(shuffled, pool)

	for i := 0; i < n; i++ {
		j, err := randIntn(len(shuffled) - i)
		if err != nil {
			return nil, err
		}
		pick := i + j
		shuffled[i], shuffled[pick] = shuffled[pick], shuffled[i]
	}
	return shuffled[:n], nil
}

// randIntn returns a uniform random int in [0, n) using a CSPRNG.
func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("corruptor: failed to sample randomness: %w", err)
	}
	return int(v.Int64()), nil
}

package ring

import (
	"context"
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"

	"github.com/tuneinsight/polyring/utils/sampling"
)

const streamKeyContext = "github.com/tuneinsight/polyring ring.SampleBatch stream key"

// StreamKey derives the 32-byte key of the i-th sampling stream of SampleBatch from key.
func StreamKey(key []byte, i int) []byte {
	material := make([]byte, len(key)+8)
	copy(material, key)
	binary.LittleEndian.PutUint64(material[len(key):], uint64(i))
	out := make([]byte, 32)
	blake3.DeriveKey(streamKeyContext, material, out)
	return out
}

// SampleBatch samples count polynomials of the given size from the distribution X,
// concurrently. The i-th polynomial is read from its own Blake3PRNG keyed with
// StreamKey(key, i), so the output only depends on key and not on the scheduling.
// Returns the context error if ctx is done before all polynomials are sampled.
func SampleBatch(ctx context.Context, key []byte, count, size int, X DistributionParameters) ([]*Poly, error) {

	if count < 0 {
		return nil, fmt.Errorf("cannot SampleBatch: negative count %d", count)
	}

	// Validates X once before spawning any work.
	if _, err := NewSampler(sampling.NewWyRand(0), X); err != nil {
		return nil, fmt.Errorf("cannot SampleBatch: %w", err)
	}

	polys := make([]*Poly, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < count; i++ {

		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {

			if err := gctx.Err(); err != nil {
				return err
			}

			prng, err := sampling.NewBlake3PRNG(StreamKey(key, i))
			if err != nil {
				return err
			}

			sampler, err := NewSampler(sampling.NewSource(prng), X)
			if err != nil {
				return err
			}

			polys[i] = sampler.ReadNew(size)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot SampleBatch: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cannot SampleBatch: %w", err)
	}

	return polys, nil
}

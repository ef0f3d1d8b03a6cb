// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package vet

import (
	"context"
	"fmt"
	"sync"

	"github.com/siemens/adbdig/family"
	"github.com/siemens/adbdig/types"

	"github.com/gammazero/workerpool"
)

// Vetter vets canonical device-bridge address strings by strictly
// re-parsing them through the address family union and then streaming the
// final [types.QualifiedEndpoint] verdicts to a result/output channel.
// Vetters use a goroutine-limited worker pool.
type Vetter struct {
	permitDevRaw bool // if true, additionally accept the standalone "dev-raw" family.

	workers  *workerpool.WorkerPool        // workers running incoming vetting jobs concurrently.
	verdicts chan types.QualifiedEndpoint // results/status stream channel.
	stopOnce sync.Once
}

// VetterOption can be passed to New when creating new Vetter objects.
type VetterOption func(*Vetter)

// New returns a new [Vetter] with a maximum worker pool of the specified
// size as well as a “verdict stream”. The verdict channel will not only
// send the final address verdicts, but also the initial and yet unvetted
// addresses as they get submitted.
//
// The vetter can be configured during creation using options:
//   - [PermitDevRaw]
func New(size int, options ...VetterOption) (*Vetter, <-chan types.QualifiedEndpoint) {
	verdicts := make(chan types.QualifiedEndpoint, size)
	vetter := &Vetter{
		workers:  workerpool.New(size),
		verdicts: verdicts,
	}
	for _, opt := range options {
		opt(vetter)
	}
	return vetter, verdicts
}

// PermitDevRaw tells a [Vetter] to additionally accept endpoints of the
// standalone “dev-raw” address family, which the address union alone never
// produces.
func PermitDevRaw() VetterOption {
	return func(v *Vetter) {
		v.permitDevRaw = true
	}
}

// VetStream reads addresses (with optional attachments) to be vetted from a
// channel until the channel is closed or the specified context gets
// cancelled. It does not return before, so callers typically run VetStream
// in a separate goroutine.
//
// The input channel transmits [types.QualifiedEndpoint] objects, but with
// the Quality field initially ignored.
func (v *Vetter) VetStream(ctx context.Context, ch <-chan types.QualifiedEndpoint) {
	for {
		select {
		case qe, ok := <-ch:
			if !ok {
				return
			}
			v.vet(ctx, qe.WithNewQuality(types.Resolving, nil))
		case <-ctx.Done():
			return
		}
	}
}

// Vet the specified canonical address string. The verdict is then sent to
// the channel returned together with the newly created [Vetter].
// Additionally, an initial notice for the address to be vetted is also sent
// beforehand.
//
// If the specified context gets cancelled, pending verdicts won't be echoed
// to the verdict stream at all, and in particular not even as invalid.
// However, spurious verdicts might still appear on the verdict stream due
// to the uncontrollable order of verdict sending and context cancellation
// detection.
func (v *Vetter) Vet(ctx context.Context, addr string) {
	v.vet(ctx, &types.QualifiedEndpointValue{
		Address: addr,
		Quality: types.Resolving,
	})
}

// VetQE vets the specified [types.QualifiedEndpoint] and works otherwise
// like [Vetter.Vet] for a plain address string. In particular, attachments
// beyond the bare qualified endpoint (such as the originating endpoint
// spec) travel through vetting unscathed.
func (v *Vetter) VetQE(ctx context.Context, qe types.QualifiedEndpoint) {
	v.vet(ctx, qe.WithNewQuality(types.Resolving, nil))
}

// vet does the real work of re-parsing a (yet-un)qualified address. To
// avoid an unnecessary [types.QualifiedEndpoint] clone, the caller is
// expected to pass in a qualified endpoint with its quality already set to
// Resolving.
func (v *Vetter) vet(ctx context.Context, notice types.QualifiedEndpoint) {
	// Allow cancelling a blocked verdict send to avoid leaking goroutines.
	select {
	case v.verdicts <- notice: // not yet the final one ;)
	case <-ctx.Done():
		return
	}
	v.workers.Submit(func() {
		var verdict types.QualifiedEndpoint
		if err := v.check(notice.Addr()); err != nil {
			verdict = notice.WithNewQuality(types.Invalid, err)
		} else {
			verdict = notice.WithNewQuality(types.Valid, nil)
		}
		// Again, allow cancelling a blocked verdict send.
		select {
		case v.verdicts <- verdict: // final one this time.
		case <-ctx.Done():
		}
	})
}

// check re-parses the given address string through the address union (and
// optionally the standalone dev-raw family), additionally insisting on the
// input being in canonical form: re-formatting the parsed value must
// reproduce the input bit by bit.
func (v *Vetter) check(addr string) error {
	var parsed family.Family
	if v.permitDevRaw {
		if devraw, err := family.ParseDevRaw(addr); err == nil {
			parsed = devraw
		}
	}
	if parsed == nil {
		address, err := family.ParseAddress(addr)
		if err != nil {
			return err
		}
		parsed = address
	}
	if canonical := parsed.String(); canonical != addr {
		return fmt.Errorf("not in canonical form, expected %q", canonical)
	}
	return nil
}

// StopWait waits for all queued vetting tasks to get processed and then
// finally closes the verdict channel.
func (v *Vetter) StopWait() {
	v.stopOnce.Do(func() {
		v.workers.StopWait()
		close(v.verdicts)
	})
}

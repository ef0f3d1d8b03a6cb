// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package qualify

import (
	"context"

	"github.com/siemens/adbdig/types"
	"github.com/siemens/adbdig/vet"
)

// Qualifier qualifies a stream of named endpoints, caching vetting verdicts
// as to avoid unnecessary duplicate vetting attempts: the same canonical
// address dug up from different endpoint specs gets vetted only once, with
// the verdict fanned out to all specs sharing it. The concrete address
// vetting is carried out by a [vet.Vetter].
type Qualifier struct {
	news     chan<- types.NamedEndpoint
	vetter   *vet.Vetter
	verdicts <-chan types.QualifiedEndpoint
}

// New returns a new Qualifier with a maximum number of parallel vetting
// workers. Vetter options (such as [vet.PermitDevRaw]) pass through to the
// embedded Vetter.
func New(size int, options ...vet.VetterOption) (*Qualifier, <-chan types.NamedEndpoint) {
	news := make(chan types.NamedEndpoint, size)
	vetter, verdicts := vet.New(size, options...)
	return &Qualifier{
		news:     news,
		vetter:   vetter,
		verdicts: verdicts,
	}, news
}

// Qualify qualifies the incoming stream of named endpoints until the input
// channel is closed. It then waits for all enqueued vetting tasks to
// complete, closes the output channel returned by New, and finally
// returns.
//
// In case the specified context is cancelled, Qualify will stop pulling off
// new qualification tasks and return as soon as possible, closing the
// output channel.
func (q *Qualifier) Qualify(ctx context.Context, in <-chan types.NamedEndpoint) {
	addrcache := NewAddressCache()
	// As soon as vetting verdicts trickle in, update the cache so that the
	// cache can inform the consumer of this Qualifier of the results.
	done := make(chan struct{}, 1) // fire and forget, and never block.
	go func() {
	slurpVerdicts:
		for {
			select {
			case verdict, ok := <-q.verdicts:
				if !ok {
					break slurpVerdicts
				}
				addrcache.Update(ctx, verdict.(types.NamedEndpoint), q.news)
			case <-ctx.Done():
				break slurpVerdicts
			}
		}
		close(done)
	}()
	// Process incoming named endpoints and initiate vetting tasks if an
	// address is seen for the first time. Addresses we've already seen, but
	// for different specs, will be directly served if their quality has
	// already been decided. Otherwise, these specs will be put on hold until
	// the vetting verdict becomes available.
slurpEndpoints:
	for {
		select {
		case ne, ok := <-in:
			if !ok {
				break slurpEndpoints
			}
			if ne.Addr() == "" {
				// Pass on yet undug (or hopeless) endpoints directly to the
				// news channel and wait for more to come in soon.
				select {
				case q.news <- ne:
				case <-ctx.Done():
					break slurpEndpoints
				}
				continue
			}
			if addrcache.Update(ctx, ne, q.news) {
				// Only schedule a vetting task the first time we see this
				// particular address.
				q.vetter.VetQE(ctx, ne)
			}
		case <-ctx.Done():
			break slurpEndpoints
		}
	}
	q.vetter.StopWait()
	// wait for all vetting verdicts to have come through and passed on
	// before calling it a day. In case the context was cancelled we don't
	// wait for the done signal, but immediately close our "outlet".
	select {
	case <-ctx.Done():
	default:
		<-done
	}
	close(q.news)
}

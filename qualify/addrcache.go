// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package qualify

import (
	"context"
	"sync"

	"github.com/siemens/adbdig/types"
)

// AddressCache caches named qualified endpoints so that unnecessary
// duplicate address vetting can be avoided, yet vetting verdicts get
// distributed at once to all endpoint specs pending on the same address.
type AddressCache struct {
	mu sync.Mutex
	m  map[string]qualityUpdateConsumers // canonical address -> list of pending spec consumers
}

// NewAddressCache returns a new AddressCache object.
func NewAddressCache() *AddressCache {
	return &AddressCache{
		m: map[string]qualityUpdateConsumers{},
	}
}

// qualityUpdateConsumers is a list of endpoint specs that map to the same
// underlying canonical address and thus want to learn about any updates in
// that address' quality.
type qualityUpdateConsumers struct {
	q         types.Quality
	err       error    // optional error reason for invalid quality
	consumers []string // waiting specs that want to consume quality updates.
}

// Update checks the specified named endpoint to see if it is a new
// (unresolved) address which hasn't yet been cached. In this case it
// returns true to signal a new address to the caller, so that the caller
// can start vetting the new address. Update returns false if the
// (unresolved) address has already been seen, and the spec for this address
// is cached. If the address is already in the cache and its quality is a
// final verdict of Valid or Invalid, then this update is automatically sent
// to the news consumer for all specs associated with this address.
func (c *AddressCache) Update(ctx context.Context, ne types.NamedEndpoint, news chan<- types.NamedEndpoint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	addr := ne.Addr()
	qc, ok := c.m[addr]
	if !ok {
		// This is the first time we see this address, so we add it to our
		// cache without any further ado.
		//
		// Note: we assume that a new address always enters in qualities
		// Unresolved or Resolving, so there will always be a later quality
		// update to be expected.
		c.m[addr] = qualityUpdateConsumers{
			q:         ne.Qual(),
			consumers: []string{ne.Spec()},
		}
		select {
		case news <- ne:
		case <-ctx.Done():
		}
		return true
	}
	// So, this address is already known. Now, if this is NOT a quality
	// update by any of the registered consumers for this address, then we're
	// done. Otherwise, update the quality information.
	knownConsumer := false
	spec := ne.Spec()
	for _, consumer := range qc.consumers {
		if consumer == spec {
			knownConsumer = true
		}
	}
	if ne.Qual() <= qc.q {
		// send an update with the most recent quality known, as the state
		// specified in the Update is already stale. We only need to inform
		// about this specific spec, no other consumers affected.
		if !knownConsumer {
			qc.consumers = append(qc.consumers, spec)
			c.m[addr] = qc
			select {
			case news <- ne.WithNewQuality(qc.q, qc.err).(types.NamedEndpoint):
			case <-ctx.Done():
			}
		}
		return false
	}
	// update quality
	qc.q = ne.Qual()
	qc.err = ne.Err()
	// This address is already known, so now check if it is in vetting or
	// not. If in vetting, then register the current spec as a consumer for a
	// later quality update (if not already registered). If already
	// (in)validated, notify all registered consumers.
	var consumers []string
	switch qc.q {
	case types.Unresolved, types.Resolving:
		if !knownConsumer {
			qc.consumers = append(qc.consumers, spec)
		}
		consumers = qc.consumers
	default:
		// As we've reached one of the terminal qualities, notify all
		// registered consumers and then clear the registration list: all
		// further Update attempts will always be immediately served for
		// their particular spec, as there won't be any quality changes
		// anymore to be sent to waiting consumers.
		consumers, qc.consumers = qc.consumers, nil
	}
	c.m[addr] = qc // update cache with most recent quality and consumers.
	// notify all registered consumers of this quality update.
	templ := ne.NE()
	templ.Quality = ne.Qual()
	for _, consumer := range consumers {
		templ := templ
		templ.EndpointSpec = consumer
		select {
		case news <- &templ:
		case <-ctx.Done(): // bail out immediately.
			return false
		}
	}
	return false
}

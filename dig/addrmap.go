// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"context"
	"sync"

	"github.com/siemens/adbdig/types"
)

// NamedEndpointSet is an endpoint spec together with a list of
// associated/dug-up qualified wire addresses.
type NamedEndpointSet struct {
	Spec      string                         `json:"spec"`      // the raw endpoint spec.
	Addresses []types.QualifiedEndpointValue `json:"addresses"` // associated canonical wire address(es).
}

// NamedEndpointsMap maps endpoint specs to their corresponding lists of
// qualified wire addresses. A typical use case for a NamedEndpointsMap is
// to consume spec-address information from an event stream (channel)
// sending updates as specs are submitted, dug into their canonical
// addresses, and finally (in)validated.
type NamedEndpointsMap struct {
	m  map[string][]types.QualifiedEndpointValue
	mu sync.Mutex
}

// NewNamedEndpointsMap returns a new and properly initialized
// NamedEndpointsMap.
func NewNamedEndpointsMap() *NamedEndpointsMap {
	return &NamedEndpointsMap{
		m: map[string][]types.QualifiedEndpointValue{},
	}
}

// Get returns all named endpoints from the map.
func (m *NamedEndpointsMap) Get() []NamedEndpointSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	sets := make([]NamedEndpointSet, 0, len(m.m))
	for spec, addrs := range m.m {
		sets = append(sets, NamedEndpointSet{
			Spec:      spec,
			Addresses: addrs,
		})
	}
	return sets
}

// Update the map with a NamedEndpoint, augmenting addresses in case they
// are yet unknown. Known addresses are updated only when their quality
// advances, so a quality never gets downgraded by stale news.
func (m *NamedEndpointsMap) Update(namep types.NamedEndpoint) {
	if namep == nil {
		return
	}
	spec := namep.Spec()
	if spec == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if qualaddrs, ok := m.m[spec]; ok {
		addr := namep.Addr()
		if addr == "" {
			// hopeless specs never dig up any address, yet their final
			// invalid verdict (and its reason) must not get lost.
			if namep.Qual() == types.Invalid && len(qualaddrs) == 0 {
				m.m[spec] = []types.QualifiedEndpointValue{namep.QE()}
			}
			return
		}
		for idx := range qualaddrs {
			if qualaddrs[idx].Address == addr {
				if namep.Qual() > qualaddrs[idx].Quality { // slightly simplified "update" rule
					qualaddrs[idx].Quality = namep.Qual()
				}
				return
			}
		}
		m.m[spec] = append(qualaddrs, namep.QE())
		return
	}
	addr := namep.Addr()
	if addr == "" {
		m.m[spec] = []types.QualifiedEndpointValue{}
	} else {
		m.m[spec] = []types.QualifiedEndpointValue{namep.QE()}
	}
}

// Track NamedEndpoint updates received from the specified update channel
// until the channel is closed or the context done. Track only returns after
// processing all updates or when the context is done.
func (m *NamedEndpointsMap) Track(ctx context.Context, news <-chan types.NamedEndpoint) error {
	for {
		select {
		case namep, ok := <-news:
			if !ok {
				return nil
			}
			m.Update(namep)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

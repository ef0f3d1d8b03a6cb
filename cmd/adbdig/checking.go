// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/siemens/adbdig/dig"
	"github.com/siemens/adbdig/qualify"
	"github.com/siemens/adbdig/vet"

	"github.com/gosuri/uilive"
	"github.com/sirupsen/logrus"
)

// DigAndReport digs the canonical wire addresses of the given device-bridge
// endpoint specs, vets them, and continuously reports the state of affairs
// on the terminal until all verdicts are in. With --json, the live display
// is skipped and the final qualified endpoints are emitted as JSON instead.
func DigAndReport(ctx context.Context, specs []string) error {
	// Create an empty (concurrency-safe) result map with named-and-qualified
	// endpoints and immediately fire off the rendering goroutine. The
	// rendering will only stop after tracking has finished because the result
	// stream channel has been closed. We then render a final update and end
	// rendering, signalling the end of our activities via renderingDone.
	endpoints := dig.NewNamedEndpointsMap()
	trackingDone := make(chan struct{})
	renderingDone := make(chan struct{})

	if *jsonOutput {
		go func() {
			<-trackingDone
			close(renderingDone)
		}()
	} else {
		go func() {
			// Dunno what uilive's background updating mode using Start() is
			// good for? It may trigger anytime with the rendering into the
			// buffer not yet complete, thus making the terminal output very
			// flickery. So we avoid Start() and instead trigger an explicit
			// flush to the terminal after having completed the rendering.
			term := uilive.New()
			renderer := newRenderer(term, len(specs))
			renderer.Indentation = int(*indentation)
			defer func() {
				renderData(term, renderer, endpoints)
				close(renderingDone)
			}()
			renderData(term, renderer, endpoints)
			ticker := time.NewTicker(20 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					renderData(term, renderer, endpoints)
				case <-trackingDone:
					return
				}
			}
		}()
	}

	// Now lets put the required processing elements and their plumbing in
	// place.
	//
	//   - Digger producing canonical wire addresses from the endpoint specs.
	//   - Qualifier consuming the addresses and vetting them (de-duplicated),
	//     producing "verdicts".
	//   - NamedEndpointsMap consuming these "verdicts".
	//
	// Rendering is done on the information collected by the
	// NamedEndpointsMap.
	diggeropts := []dig.DiggerOption{}
	if *dnsServer != "" {
		logrus.Debugf("digging via dedicated DNS server %s", *dnsServer)
		diggeropts = append(diggeropts, dig.WithDNSServer(*dnsServer))
	} else {
		logrus.Debug("digging via the platform resolver")
	}
	digger, diggernews, err := dig.New(int(*workerNumber), diggeropts...)
	if err != nil {
		return fmt.Errorf("cannot dig endpoint addresses: %w", err)
	}
	vetteropts := []vet.VetterOption{}
	if *permitDevRaw {
		vetteropts = append(vetteropts, vet.PermitDevRaw())
	}
	qualifier, news := qualify.New(int(*workerNumber), vetteropts...)
	go qualifier.Qualify(ctx, diggernews)
	go func() {
		_ = endpoints.Track(ctx, news)
		logrus.Debug("all qualification news tracked")
		close(trackingDone)
	}()

	// Finally feed the endpoint specs into the Digger, so they can be
	// processed and move through the different stages. Then close the input
	// stream and wait for all the data to pass the stages and finally get
	// rendered (or JSON-dumped) a last time.
	go func() {
		logrus.Debugf("digging %d endpoint spec(s)", len(specs))
		digger.DigSpecs(context.Background(), specs)
		digger.StopWait()
		logrus.Debug("all endpoint specs dug")
	}()
	<-renderingDone

	if *jsonOutput {
		sets := endpoints.Get()
		sort.Slice(sets, func(a, b int) bool { return sets[a].Spec < sets[b].Spec })
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sets)
	}
	return nil
}

// renderData get the current named+qualified endpoint data and then renders
// (and flushes) it to the terminal.
func renderData(term *uilive.Writer, r *renderer, data *dig.NamedEndpointsMap) {
	r.Render(data.Get())
	term.Flush()
}

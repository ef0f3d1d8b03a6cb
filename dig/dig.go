// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"context"
	"net/netip"

	"github.com/siemens/adbdig/dnspool"
	"github.com/siemens/adbdig/family"
	"github.com/siemens/adbdig/types"

	"github.com/gammazero/workerpool"
	"github.com/miekg/dns"
)

// Digger digs the canonical wire addresses of device-bridge endpoint specs
// and then streams its findings over its “news” channel.
//
// An endpoint spec is either a full address family literal (such as
// “vsock:1:2” or “tcp:[::1]:5555”), or a bare “host[:port]” shorthand as
// accepted by “adb connect”. Literals pass through after a fast pure parse;
// shorthands get their hostnames dug up concurrently, either through the
// platform resolver or through a dedicated DNS server.
//
// By connecting the news (output) channel of a Digger to the input channel
// of a Qualifier the addresses dug can automatically be vetted and
// de-duplicated downstream.
type Digger struct {
	pool    *dnspool.Pool          // if non-nil, dig via this dedicated DNS server pool.
	workers *workerpool.WorkerPool // otherwise, platform resolver jobs run here.
	news    chan types.NamedEndpoint
}

// DiggerOption can be passed to New when creating new [Digger] objects.
type DiggerOption func(*diggerOptions)

type diggerOptions struct {
	dnsServer string
}

// WithDNSServer makes the Digger ask the DNS server at the given
// “host:port” address instead of the platform resolver when resolving
// endpoint shorthands.
func WithDNSServer(addr string) DiggerOption {
	return func(o *diggerOptions) {
		o.dnsServer = addr
	}
}

// New returns a new Digger with a maximum worker pool of the specified size
// as well as a “news stream”. This news channel sends NamedEndpoint
// elements as specs are submitted for digging, as well as the outcome(s) of
// the digs. Please note that the news channel only gets closed by
// [Digger.StopWait], never by a Digger on its own account.
func New(size int, options ...DiggerOption) (*Digger, chan types.NamedEndpoint, error) {
	opts := diggerOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	news := make(chan types.NamedEndpoint, size)
	digger := &Digger{news: news}
	if opts.dnsServer != "" {
		dnsclnt := dns.Client{
			Net: "tcp", // ...since there's some chance that we need more than just two queries
		}
		pool, err := dnspool.New(
			context.Background(), // ...connection dialing only.
			size, &dnsclnt, opts.dnsServer)
		if err != nil {
			return nil, nil, err
		}
		digger.pool = pool
	} else {
		digger.workers = workerpool.New(size)
	}
	return digger, news, nil
}

// DigSpecs digs the given list of endpoint specs. Intermediate and final
// results are getting sent to the channel returned beforehand by New.
func (d *Digger) DigSpecs(ctx context.Context, specs []string) {
	for _, spec := range specs {
		spec := spec
		// Initially inform the consumer of any spec that will undergo
		// digging; please note that resolution jobs merely get enqueued and
		// thus don't block. We only block if the consumer doesn't consume
		// our news ... and then only until the context gets cancelled.
		select {
		case d.news <- &types.NamedEndpointValue{
			EndpointSpec: spec,
		}:
		case <-ctx.Done():
			return
		}
		// The pure literal fast path: address family literals never go
		// near any resolver.
		if addr, err := family.ParseAddress(spec); err == nil {
			d.emit(ctx, spec, addr.String(), types.Unresolved, nil)
			continue
		}
		d.digShorthand(ctx, spec)
	}
}

// digShorthand resolves a “host[:port]” endpoint shorthand concurrently,
// emitting one news item per canonical tcp address dug up, or a single
// invalid verdict when resolution fails.
func (d *Digger) digShorthand(ctx context.Context, spec string) {
	if d.pool == nil {
		d.workers.Submit(func() {
			tcp, err := family.TcpFromHostContext(ctx, spec)
			if err != nil {
				d.emit(ctx, spec, "", types.Invalid, err)
				return
			}
			d.emit(ctx, spec, tcp.String(), types.Unresolved, nil)
		})
		return
	}
	host, port, haveport, err := splitShorthand(spec)
	if err != nil {
		d.emit(ctx, spec, "", types.Invalid, err)
		return
	}
	d.pool.ResolveName(ctx, host, func(addrs []netip.Addr, err error) {
		if err != nil {
			d.emit(ctx, spec, "", types.Invalid, err)
			return
		}
		for _, ip := range v4First(addrs) {
			d.emit(ctx, spec, tcpEndpoint(ip, port, haveport), types.Unresolved, nil)
		}
	})
}

// emit sends a single named endpoint news item, giving up when the context
// gets cancelled so nobody is left hanging on a saturated news channel.
func (d *Digger) emit(ctx context.Context, spec string, addr string, q types.Quality, err error) {
	ne := (&types.NamedEndpointValue{
		EndpointSpec: spec,
		QualifiedEndpointValue: types.QualifiedEndpointValue{
			Address: addr,
		},
	}).WithNewQuality(q, err).(types.NamedEndpoint)
	select {
	case d.news <- ne:
	case <-ctx.Done():
	}
}

// StopWait waits for all queued digging tasks to get processed and then
// finally closes the news channel.
func (d *Digger) StopWait() {
	if d.pool != nil {
		d.pool.StopWait()
	} else {
		d.workers.StopWait()
	}
	close(d.news)
}

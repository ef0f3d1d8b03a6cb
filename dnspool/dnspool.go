// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dnspool

import (
	"context"
	"fmt"
	"net/netip"
	"sync"

	"github.com/gammazero/workerpool"
	"github.com/miekg/dns"
)

// Pool is a (size-limited) pool of DNS client connections talking with the
// same DNS server address.
type Pool struct {
	workers *workerpool.WorkerPool
	mu      sync.Mutex // protects the pool of DNS connections
	free    []*dns.Conn
}

// New returns a pool of the specified size of DNS client connections, with
// each connection talking to the same DNS server address.
//
// DNS tasks are submitted using [Pool.Submit] in form of task functions
// receiving a concrete [dns.Conn]. [Pool.ResolveName] covers the common
// A/AAAA lookup case.
//
// The passed context is used for creating (dialing) the DNS client
// connections only. It is not passed to the submitted DNS tasks, so task
// submitters are themselves responsible for capturing the necessary context
// in their task function closure.
func New(ctx context.Context, size int, dnsclnt *dns.Client, addr string) (*Pool, error) {
	pool := &Pool{
		workers: workerpool.New(size),
	}
	free := make([]*dns.Conn, 0, size)
	for i := 0; i < size; i++ {
		conn, err := dnsclnt.DialContext(ctx, addr)
		if err != nil {
			// Immediately release all connections created so far.
			for _, conn := range free {
				conn.Close()
			}
			return nil, err
		}
		free = append(free, conn)
	}
	pool.free = free
	return pool, nil
}

// Submit a task to the DNS client connection pool, where it gets enqueued
// to be executed on an available DNS client connection.
func (p *Pool) Submit(task func(conn *dns.Conn)) {
	p.workers.Submit(func() { p.task(task) })
}

// ResolveName is a convenience method for submitting A/AAAA queries and
// gathering the results. The resolved IP addresses, or an error if
// resolution failed, are passed to the specified callback function fn.
//
// fn is called only once after completing both the A and AAAA queries, so
// fn always gets to see the IP addresses from both IP families (if any).
//
// Please note that when the passed context is cancelled this will cancel
// all in-flight as well as scheduled name resolution jobs.
func (p *Pool) ResolveName(ctx context.Context, name string, fn func([]netip.Addr, error)) {
	p.Submit(func(conn *dns.Conn) {
		var addrs []netip.Addr
		var err error
		defer func() { fn(addrs, err) }() // ...ensure triggering the result callback on our way out

		dnsclnt := dns.Client{}
		for _, addrType := range []uint16{dns.TypeA, dns.TypeAAAA} {
			// don't query if the context has been cancelled; trigger the
			// callback immediately with the context error instead.
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			default:
			}

			msg := dns.Msg{
				MsgHdr: dns.MsgHdr{Id: dns.Id()},
			}
			msg.SetQuestion(dns.Fqdn(name), addrType)
			var r *dns.Msg
			r, _, err = dnsclnt.ExchangeWithConn(&msg, conn)
			if err != nil {
				return
			}
			for _, rr := range r.Answer {
				var ip netip.Addr
				var ok bool
				switch addrRR := rr.(type) {
				case *dns.A:
					ip, ok = netip.AddrFromSlice(addrRR.A)
				case *dns.AAAA:
					ip, ok = netip.AddrFromSlice(addrRR.AAAA)
				default:
					continue
				}
				if ok {
					addrs = append(addrs, ip.Unmap())
				}
			}
		}
		// Neither A nor AAAA answers counts as an error, so the callback
		// always gets either addresses or a reason.
		if len(addrs) == 0 {
			err = fmt.Errorf("ResolveName: query for %q yields no answers", name)
		}
	})
}

// task grabs the next free DNS client connection and passes it to the
// specified function. After the function returns, the connection is put
// back into the free list.
func (p *Pool) task(task func(conn *dns.Conn)) {
	// pop off a free DNS client connection,
	// https://ueokande.github.io/go-slice-tricks/,
	p.mu.Lock()
	if len(p.free) == 0 {
		panic("no free DNS client connection available")
	}
	last := len(p.free) - 1
	conn := p.free[last]
	p.free = p.free[:last]
	p.mu.Unlock()
	// run the task with its assigned DNS client connection...
	task(conn)
	// ...and push the DNS client connection back into the free list.
	p.mu.Lock()
	p.free = append(p.free, conn)
	p.mu.Unlock()
}

// StopWait waits for all enqueued lookup or generic DNS request tasks to
// finish, and then shuts down the pool, closing its client connections.
func (p *Pool) StopWait() {
	p.workers.StopWait()
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, conn := range p.free {
		conn.Close()
	}
	p.free = nil
}

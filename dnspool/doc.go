// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package dnspool implements a simple limiting DNS client-request execution
pool. Adbdig uses a [Pool] of “DNS workers” for A/AAAA lookups whenever a
dedicated DNS server is to be asked instead of the platform resolver.
Please note that the A/AAAA queries for a single name are not concurrent.

Usage

	dnsclnt := dns.Client{}
	pool, err := dnspool.New(
	    context.Background(),
	    4,                // number of parallel DNS connections and thus workers
	    &dnsclnt,         // DNS client
	    "127.0.0.1:53",   // address of server/resolver
	)
	pool.ResolveName(ctx,
	    "device.example.org",
	    func(addrs []netip.Addr, err error) {
	        // do something with addrs, unless there's an error reported
	    })
	pool.Submit(func(conn *dns.Conn) {
	    // do something with the DNS connection
	})

# Acknowledgements

Under its hood, [Pool] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package dnspool

// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package vet implements a device-bridge address (in)validator.

[Vetter] objects support concurrent address vetting jobs with maximum
goroutine limits. Individual verdicts are streamed as they are decided, to
a channel returned when creating a new Vetter object. Here, a
[types.QualifiedEndpoint] consists of (at least) a canonical address string
as well as the [types.Quality] state, notably [types.Valid] and
[types.Invalid], but also [types.Resolving] and (initially)
[types.Unresolved].

	         +---+
	string-->| V +-->ch QualifiedEndpoint
	         +---+

⚠ Please note that a [Vetter] initially emits any newly submitted address
before it undergoes vetting (with its quality set to “resolving”), as well
as later the final verdict. The rationale is that especially interactive
clients can more easily manage their display so that all enqueued vetting
jobs become early visible.

If needed, a Vetter can read the addresses it has to vet from an input
channel until this input channel is closed.

	            +---+
	ch string-->| V +-->ch QualifiedEndpoint
	            +---+

Vetting itself is pure: an address is valid exactly if it re-parses through
the closed address family union – plus, optionally, the standalone
“dev-raw” family – and its canonical form reproduces the input. No socket
gets opened, no packet sent.

# Acknowledgements

Under its hood, [Vetter] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package vet

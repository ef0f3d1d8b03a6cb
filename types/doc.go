// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package types defines adbdig's information model. Which is rather simple and
mainly revolves around [QualifiedEndpoint] and [NamedEndpoint], as well as
the [Quality] of endpoint addresses. A [NamedEndpoint] is a
[QualifiedEndpoint] with the raw endpoint spec attached that the canonical
address was dug from.

# Extending QualifiedEndpoint

Depending on how adbdig gets integrated into other applications, there might
be the need to add application-specific information to qualified endpoints.
The vetting and qualification stages accept anything that satisfies the
[QualifiedEndpoint] interface.

In case an implementation chooses to embed [QualifiedEndpointValue] into its
own type, it is essential to (re)implement the
[QualifiedEndpointValue.WithNewQuality] method. Failing to do so will cause
the embedded WithNewQuality method to be promoted to the new type, yet it
won't return the proper new type, but instead only a stock
QualifiedEndpointValue, losing the additional information in the process.

# Design Rationale

The separation into a [QualifiedEndpoint] interface as well as a
[QualifiedEndpointValue] struct type is necessary in order to allow
polymorphism: a vetter doesn't care whether it chews on a bare qualified
endpoint or on one that carries its originating spec (or whatever else an
integrating application attaches), as long as it looks and smells like a
qualified endpoint.

Please keep in mind that adbdig is inherently concurrent wherever possible:
digging multiple endpoint specs and vetting lots of addresses is carried out
concurrently. Since interface pointers get passed around through channels,
value semantics and immutability come in through a careful
[QualifiedEndpoint] interface design offering only getters plus the
copy-on-update WithNewQuality. This not only avoids a locking mess, but also
tons of subtle bugs.
*/
package types

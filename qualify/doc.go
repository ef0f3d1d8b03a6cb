// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package qualify implements a device-bridge address qualifier with caching in
order to avoid expensive duplicate address vetting: no matter how many
endpoint specs dig up the same canonical address, it gets vetted exactly
once, and the verdict then fans out to every spec awaiting it.

The concrete address vetting is carried out by a [vet.Vetter].
*/
package qualify

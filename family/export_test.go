// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

// Resolver hook surgery: tests patch this to keep the platform resolver
// out of the test runs.
var LookupNetIPHook = &lookupNetIP

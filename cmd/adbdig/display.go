// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/siemens/adbdig/dig"
	"github.com/siemens/adbdig/types"
)

// renderer renders the terminal display, based on named+qualified endpoint
// information passed to its Render method.
type renderer struct {
	Indentation int
	specCount   int
	w           io.Writer
	spinner     *spinner
}

// newRenderer returns a renderer object rendering to the specified
// io.Writer. specCount tells how many endpoint specs are getting dug, for a
// proxy message while no endpoint information has arrived yet.
func newRenderer(w io.Writer, specCount int) *renderer {
	return &renderer{
		specCount: specCount,
		w:         w,
		spinner:   newSpinner(*spinnerInterval),
	}
}

// Render the given named+qualified endpoints.
func (r *renderer) Render(sets []dig.NamedEndpointSet) {
	groups := groupByFamily(sets)
	// If we don't have any endpoint information yet, show a proxy message.
	if len(groups) == 0 {
		fmt.Fprintf(r.w, "digging %d device-bridge endpoint spec(s)...\n", r.specCount)
		return
	}
	// For neat display, determine the length of the longest spec in the data
	// to display, so that the addresses column doesn't zig-zag around across
	// different groups.
	maxlen := 0
	for _, group := range groups {
		for _, set := range group {
			if l := len(set.Spec); l > maxlen {
				maxlen = l
			}
		}
	}
	// Render the list of address families in play...
	fmt.Fprint(r.w, "address families in play:")
	for _, group := range groups {
		fn := familyOf(group[0])
		if fn == "" {
			continue // skip the family-less group
		}
		fmt.Fprintf(r.w, " %s", familyNameStyle.Styled(fn))
	}
	fmt.Fprintln(r.w)
	// Render the family groups...
	for _, group := range groups {
		switch fn := familyOf(group[0]); fn {
		case "":
			fmt.Fprint(r.w, "endpoints without any dug-up address\n")
		default:
			fmt.Fprintf(r.w, "endpoints of the %s address family\n", familyNameStyle.Styled(fn))
		}
		for _, set := range group {
			r.renderGroupDetails(maxlen, set)
		}
	}
}

// renderGroupDetails renders a family group's specs and qualified addresses.
func (r *renderer) renderGroupDetails(labelwidth int, set dig.NamedEndpointSet) {
	fmt.Fprintf(r.w, "%-*s%-*s", r.Indentation, "", labelwidth, set.Spec)
	for idx, addr := range set.Addresses {
		if idx > 0 {
			fmt.Fprint(r.w, " ")
		}
		switch addr.Quality {
		case types.Unresolved:
			fmt.Fprintf(r.w, " ? %s", addr.Address)
		case types.Resolving:
			fmt.Fprint(r.w, resolvingAddressStyle.Styled(" "+r.spinner.Spinner()+addr.Address+" "))
		case types.Valid:
			fmt.Fprint(r.w, validAddressStyle.Styled(" ✔ "+addr.Address+" "))
		case types.Invalid:
			label := addr.Address
			if label == "" {
				// hopeless specs never dig up any address, so show the
				// reason instead.
				if err := addr.Err(); err != nil {
					label = err.Error()
				}
			}
			fmt.Fprint(r.w, invalidAddressStyle.Styled(" × "+label+" "))
		}
	}
	fmt.Fprintln(r.w)
}

// sortQualifiedEndpoints sorts a slice of qualified endpoint addresses in
// place by their canonical wire address.
func sortQualifiedEndpoints(addrs []types.QualifiedEndpointValue) {
	sort.Slice(addrs, func(a, b int) bool {
		return addrs[a].Address < addrs[b].Address
	})
}

// sortSpecs sorts a slice of named endpoint sets in place; first according
// to the address family of their dug-up addresses (sets without any address
// are assumed to be of family ""), and second according to their specs.
func sortSpecs(sets []dig.NamedEndpointSet) {
	sort.Slice(sets, func(a, b int) bool {
		fA := familyOf(sets[a])
		fB := familyOf(sets[b])
		return (fA < fB) || ((fA == fB) && (sets[a].Spec < sets[b].Spec))
	})
}

// familyOf returns the address family tag of a named endpoint set, or "" if
// no address has been dug up (yet).
func familyOf(set dig.NamedEndpointSet) string {
	if len(set.Addresses) == 0 {
		return ""
	}
	tag, _, _ := strings.Cut(set.Addresses[0].Address, ":")
	return tag
}

// Note: groupByFamily modifies the passed sets in place.
func groupByFamily(sets []dig.NamedEndpointSet) [][]dig.NamedEndpointSet {
	sortSpecs(sets)
	groups := [][]dig.NamedEndpointSet{}
	var recentGroup []dig.NamedEndpointSet
	for _, set := range sets {
		fn := familyOf(set)
		// if this is the first group ever or we have wandered off into a new
		// group, then allocate a new group.
		if recentGroup == nil || fn != familyOf(recentGroup[0]) {
			if recentGroup != nil {
				groups = append(groups, recentGroup)
			}
			recentGroup = []dig.NamedEndpointSet{}
		}
		sortQualifiedEndpoints(set.Addresses)
		recentGroup = append(recentGroup, set)
	}
	if recentGroup != nil {
		groups = append(groups, recentGroup)
	}
	return groups
}

// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

// NamedEndpoint represents a raw device-bridge endpoint spec, together with
// a canonical wire address and the quality ([Quality] type) of that
// address.
type NamedEndpoint interface {
	QualifiedEndpoint
	Spec() string          // the raw endpoint spec as the user supplied it.
	NE() NamedEndpointValue // returns a copy
}

// QualifiedEndpoint gives access to qualified endpoint address information
// and also allows deriving a copy with updated quality information.
type QualifiedEndpoint interface {
	Addr() string                                          // returns the canonical wire address.
	Qual() Quality                                         // returns the Quality.
	Err() error                                            // if Quality is Invalid, optional additional error information.
	QE() QualifiedEndpointValue                            // returns (a copy of) the qualified endpoint information.
	WithNewQuality(q Quality, err error) QualifiedEndpoint // returns a new and updated qualified endpoint.
}

// NamedEndpointValue implements a concrete representation of a
// [NamedEndpoint].
type NamedEndpointValue struct {
	EndpointSpec           string `json:"spec"` // the raw endpoint spec.
	QualifiedEndpointValue        // a single associated canonical address.
}

var _ NamedEndpoint = (*NamedEndpointValue)(nil)

// Spec returns the raw endpoint spec.
func (ne *NamedEndpointValue) Spec() string {
	return ne.EndpointSpec
}

// NE returns (a copy of) the named endpoint information.
func (ne *NamedEndpointValue) NE() NamedEndpointValue {
	return *ne
}

// WithNewQuality returns newly qualified (named) endpoint information.
func (ne *NamedEndpointValue) WithNewQuality(q Quality, err error) QualifiedEndpoint {
	qe := ne.QE()
	qe.Quality = q
	qe.err = err
	return &NamedEndpointValue{
		EndpointSpec:           ne.EndpointSpec,
		QualifiedEndpointValue: qe,
	}
}

// QualifiedEndpointValue is a canonical device-bridge wire address with an
// associated quality, such as unresolved, resolving, valid, and invalid.
type QualifiedEndpointValue struct {
	Address string  `json:"address"` // a single canonical wire address.
	Quality Quality `json:"quality"` // quality (digging/vetting) state.
	err     error   // optional error details for invalid endpoints.
}

var _ QualifiedEndpoint = (*QualifiedEndpointValue)(nil)

// Addr returns the canonical wire address.
func (qe *QualifiedEndpointValue) Addr() string { return qe.Address }

// Qual returns the quality.
func (qe *QualifiedEndpointValue) Qual() Quality { return qe.Quality }

// Err returns an optional error that occurred while trying to qualify an
// endpoint.
func (qe *QualifiedEndpointValue) Err() error { return qe.err }

// QE returns (a copy of) the qualified endpoint information.
func (qe *QualifiedEndpointValue) QE() QualifiedEndpointValue {
	return *qe
}

// WithNewQuality returns newly qualified endpoint information.
func (qe *QualifiedEndpointValue) WithNewQuality(q Quality, err error) QualifiedEndpoint {
	return &QualifiedEndpointValue{
		Address: qe.Address,
		Quality: q,
		err:     err,
	}
}

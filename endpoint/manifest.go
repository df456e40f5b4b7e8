// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package endpoint

import (
	"io"

	"github.com/ugorji/go/codec"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var manifestHandle = &codec.JsonHandle{
	BasicHandle: codec.BasicHandle{
		TypeInfos: codec.NewTypeInfos([]string{"json"}),
	},
}

// Manifest is the discovery document served at /discover.
type Manifest struct {
	ProtocolMode string            `json:"protocolMode"`
	Services     []ServiceManifest `json:"services"`
}

// ServiceManifest describes one bound service.
type ServiceManifest struct {
	Name     string   `json:"name"`
	Handlers []string `json:"handlers"`
}

// newManifest builds the mode-independent part of the discovery document, with
// services and handlers in lexical order.
func newManifest(services map[string]Service) Manifest {
	names := maps.Keys(services)
	slices.Sort(names)

	m := Manifest{
		Services: make([]ServiceManifest, 0, len(names)),
	}

	for _, name := range names {
		handlers := maps.Keys(services[name].Handlers)
		slices.Sort(handlers)
		if handlers == nil {
			handlers = []string{}
		}

		m.Services = append(m.Services, ServiceManifest{Name: name, Handlers: handlers})
	}

	return m
}

// EncodeManifest writes the JSON form of a Manifest.
func EncodeManifest(w io.Writer, m Manifest) error {
	return codec.NewEncoder(w, manifestHandle).Encode(m)
}

// DecodeManifest reads the JSON form of a Manifest.
func DecodeManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	err := codec.NewDecoder(r, manifestHandle).Decode(&m)
	return m, err
}

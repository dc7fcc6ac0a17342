package digraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrUnknownEndpoint is reported when a decoded edge names a node key
// absent from the decoded node set.
var ErrUnknownEndpoint = errors.New("digraph: edge endpoint not in node set")

// nodeRecord is the wire form of a node.
type nodeRecord[K comparable, N any] struct {
	Key   K `yaml:"key" json:"key"`
	Value N `yaml:"value" json:"value"`
}

// edgeRecord is the wire form of an edge, endpoints by key.
type edgeRecord[K comparable, E any] struct {
	Source K `yaml:"source" json:"source"`
	Target K `yaml:"target" json:"target"`
	Value  E `yaml:"value" json:"value"`
}

// graphRecord is the wire form of a container: every node, then every
// outbound edge grouped by source in adjacency order. Decoding connects
// edges in listed order, so per-node outbound order round-trips.
type graphRecord[K comparable, N, E any] struct {
	Nodes []nodeRecord[K, N] `yaml:"nodes" json:"nodes"`
	Edges []edgeRecord[K, E] `yaml:"edges" json:"edges"`
}

func (g *Graph[K, N, E]) toRecord() graphRecord[K, N, E] {
	var rec graphRecord[K, N, E]
	for _, n := range g.ToVec() {
		rec.Nodes = append(rec.Nodes, nodeRecord[K, N]{Key: n.key, Value: n.value})
		for _, e := range n.IterOut() {
			rec.Edges = append(rec.Edges, edgeRecord[K, E]{
				Source: e.Source.key,
				Target: e.Target.key,
				Value:  e.Value,
			})
		}
	}

	return rec
}

func graphFromRecord[K comparable, N, E any](rec graphRecord[K, N, E]) (*Graph[K, N, E], error) {
	g := NewGraph[K, N, E]()
	for _, nr := range rec.Nodes {
		g.Insert(New[K, N, E](nr.Key, nr.Value))
	}
	for _, er := range rec.Edges {
		src, ok := g.Get(er.Source)
		if !ok {
			return nil, fmt.Errorf("%w: source %v", ErrUnknownEndpoint, er.Source)
		}
		tgt, ok := g.Get(er.Target)
		if !ok {
			return nil, fmt.Errorf("%w: target %v", ErrUnknownEndpoint, er.Target)
		}
		src.Connect(tgt, er.Value)
	}

	return g, nil
}

// EncodeYAML writes the container to w in YAML form. K, N and E must be
// yaml-marshalable.
func (g *Graph[K, N, E]) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(g.toRecord()); err != nil {
		return fmt.Errorf("digraph: encode yaml: %w", err)
	}

	return enc.Close()
}

// DecodeYAML reads a container from YAML previously written by
// EncodeYAML. Per node, outbound edges match the original by target key
// and edge value, in order.
func DecodeYAML[K comparable, N, E any](r io.Reader) (*Graph[K, N, E], error) {
	var rec graphRecord[K, N, E]
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("digraph: decode yaml: %w", err)
	}

	return graphFromRecord(rec)
}

// EncodeJSON writes the container to w in JSON form.
func (g *Graph[K, N, E]) EncodeJSON(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(g.toRecord()); err != nil {
		return fmt.Errorf("digraph: encode json: %w", err)
	}

	return nil
}

// DecodeJSON reads a container from JSON previously written by
// EncodeJSON.
func DecodeJSON[K comparable, N, E any](r io.Reader) (*Graph[K, N, E], error) {
	var rec graphRecord[K, N, E]
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("digraph: decode json: %w", err)
	}

	return graphFromRecord(rec)
}

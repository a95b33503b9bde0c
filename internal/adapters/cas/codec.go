package cas

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/zerr"
)

// payloadFormat tags the JSON layout inside an entry. It changes together
// with domain.CacheFormatVersion.
const payloadFormat = "onto-graph/" + domain.CacheFormatVersion

// envelope is the decompressed content of a cache entry.
type envelope struct {
	Format   string          `json:"format"`
	Checksum string          `json:"checksum"`
	Payload  json.RawMessage `json:"payload"`
}

// graphPayload is the flat form of a graph. Entities reference each other by
// index into Nodes, so cycles need no special handling.
type graphPayload struct {
	Source  string          `json:"source"`
	Triples []domain.Triple `json:"triples"`
	Nodes   []node          `json:"nodes"`
}

type node struct {
	IRI      string            `json:"iri"`
	Kind     domain.EntityKind `json:"kind"`
	Label    string            `json:"label,omitempty"`
	Comment  string            `json:"comment,omitempty"`
	Parents  []int             `json:"parents,omitempty"`
	Children []int             `json:"children,omitempty"`
}

// Codec turns graphs into compressed, checksummed cache entries and back.
// It is safe for concurrent use.
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCodec creates a Codec.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd decoder")
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Encode serializes g. With a positive capacity, a hierarchy deeper than
// capacity fails with domain.ErrDepthExceeded; zero means unbounded.
func (c *Codec) Encode(g *domain.Graph, capacity int) ([]byte, error) {
	nodes, err := flatten(g, capacity)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(graphPayload{Source: g.Source, Triples: g.Triples, Nodes: nodes})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal graph")
	}

	raw, err := json.Marshal(envelope{
		Format:   payloadFormat,
		Checksum: checksum(payload),
		Payload:  payload,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal envelope")
	}

	return c.enc.EncodeAll(raw, nil), nil
}

// Decode rebuilds a graph from an entry produced by Encode.
func (c *Codec) Decode(data []byte) (*domain.Graph, error) {
	raw, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decompress entry")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal envelope")
	}
	if env.Format != payloadFormat {
		return nil, zerr.With(zerr.New("unsupported entry format"), "format", env.Format)
	}
	if got := checksum(env.Payload); got != env.Checksum {
		return nil, zerr.With(zerr.New("checksum mismatch"), "expected", env.Checksum)
	}

	var p graphPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal graph")
	}

	return rebuild(&p)
}

// flatten numbers the entities breadth first from the roots with an explicit
// worklist. Entities reachable only through cycles are seeded afterwards in
// IRI order.
func flatten(g *domain.Graph, capacity int) ([]node, error) {
	index := make(map[*domain.Entity]int)
	depth := make(map[*domain.Entity]int)
	var order []*domain.Entity
	var queue []*domain.Entity

	visit := func(e *domain.Entity, d int) error {
		if _, seen := index[e]; seen {
			return nil
		}
		if capacity > 0 && d > capacity {
			return domain.Fail(domain.ErrDepthExceeded, nil, "hierarchy too deep",
				"depth", d, "capacity", capacity, "iri", e.IRI.String())
		}
		index[e] = len(order)
		depth[e] = d
		order = append(order, e)
		queue = append(queue, e)
		return nil
	}

	drain := func() error {
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			for _, child := range e.Children {
				if err := visit(child, depth[e]+1); err != nil {
					return err
				}
			}
		}
		return nil
	}

	all := slices.Collect(g.Entities())

	for _, e := range all {
		if len(e.Parents) == 0 {
			if err := visit(e, 1); err != nil {
				return nil, err
			}
		}
	}
	if err := drain(); err != nil {
		return nil, err
	}
	for _, e := range all {
		if err := visit(e, 1); err != nil {
			return nil, err
		}
		if err := drain(); err != nil {
			return nil, err
		}
	}

	nodes := make([]node, len(order))
	for i, e := range order {
		nodes[i] = node{
			IRI:      e.IRI.String(),
			Kind:     e.Kind,
			Label:    e.Label,
			Comment:  e.Comment,
			Parents:  indices(index, e.Parents),
			Children: indices(index, e.Children),
		}
	}
	return nodes, nil
}

func indices(index map[*domain.Entity]int, entities []*domain.Entity) []int {
	if len(entities) == 0 {
		return nil
	}
	out := make([]int, len(entities))
	for i, e := range entities {
		out[i] = index[e]
	}
	return out
}

func rebuild(p *graphPayload) (*domain.Graph, error) {
	g := domain.NewGraph(p.Source)
	g.Triples = p.Triples

	entities := make([]*domain.Entity, len(p.Nodes))
	for i := range p.Nodes {
		n := &p.Nodes[i]
		entities[i] = &domain.Entity{
			IRI:     domain.NewIRI(n.IRI),
			Kind:    n.Kind,
			Label:   n.Label,
			Comment: n.Comment,
		}
	}

	resolve := func(refs []int) ([]*domain.Entity, error) {
		if len(refs) == 0 {
			return nil, nil
		}
		out := make([]*domain.Entity, len(refs))
		for i, ref := range refs {
			if ref < 0 || ref >= len(entities) {
				return nil, zerr.With(zerr.New("dangling node reference"), "ref", fmt.Sprint(ref))
			}
			out[i] = entities[ref]
		}
		return out, nil
	}

	for i := range p.Nodes {
		var err error
		if entities[i].Parents, err = resolve(p.Nodes[i].Parents); err != nil {
			return nil, err
		}
		if entities[i].Children, err = resolve(p.Nodes[i].Children); err != nil {
			return nil, err
		}
		g.AddEntity(entities[i])
	}

	return g, nil
}

func checksum(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

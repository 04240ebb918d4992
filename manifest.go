package hierarchy

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"sigs.k8s.io/yaml"
)

// Manifest is a declarative description of a hierarchy. It replaces a series
// of registration calls with data: each entry becomes one TypeNode, and
// children in document order become declaration order.
type Manifest struct {
	Name  string         `json:"name,omitempty"`
	Nodes []ManifestNode `json:"nodes"`
}

// ManifestNode declares one variant. Prototype names an entry of the
// prototype map handed to Build; entries without one get no constructor and
// can only be found, not instantiated.
type ManifestNode struct {
	Name      string         `json:"name"`
	Labels    []string       `json:"labels,omitempty"`
	Version   Version        `json:"version,omitempty"`
	Prototype string         `json:"prototype,omitempty"`
	Children  []ManifestNode `json:"children,omitempty"`
}

// DecodeManifest reads a manifest from YAML or JSON.
func DecodeManifest(data io.Reader) (*Manifest, error) {
	bytes, err := io.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("could not read manifest: %w", err)
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(bytes, manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	return manifest, nil
}

// Fingerprint hashes the manifest into a stable identifier: the JSON form is
// canonicalized so key order and whitespace do not matter, then run through
// FNV-64. The hash is not cryptographically secure, it only detects drift
// between a manifest and a previously built tree.
func (m *Manifest) Fingerprint() (uint64, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return 0, fmt.Errorf("could not marshal manifest: %w", err)
	}
	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return 0, fmt.Errorf("could not canonicalize manifest: %w", err)
	}
	h := fnv.New64()
	// fnv64 can never fail to write
	_, _ = h.Write(canonical)
	return h.Sum64(), nil
}

// Build registers every node the manifest declares into the tree. prototypes
// maps the manifest's prototype names to pointer-to-struct prototypes; an
// entry naming an unknown prototype fails the build.
func (t *Tree) Build(m *Manifest, prototypes map[string]any) error {
	for _, decl := range m.Nodes {
		if err := t.buildNode(nil, decl, prototypes); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) buildNode(parent *TypeNode, decl ManifestNode, prototypes map[string]any) error {
	var opts []NodeOption
	if len(decl.Labels) > 0 {
		opts = append(opts, WithLabels(decl.Labels...))
	}
	if !decl.Version.IsZero() {
		opts = append(opts, WithVersion(decl.Version))
	}
	if decl.Prototype != "" {
		prototype, ok := prototypes[decl.Prototype]
		if !ok {
			return fmt.Errorf("manifest node %q names unknown prototype %q", decl.Name, decl.Prototype)
		}
		if _, err := prototypeElem(prototype); err != nil {
			return fmt.Errorf("manifest node %q: %w", decl.Name, err)
		}
		opts = append(opts, WithPrototype(prototype))
	}

	var node *TypeNode
	var err error
	if parent == nil {
		node, err = t.Register(decl.Name, opts...)
	} else {
		node, err = t.RegisterChild(parent, decl.Name, opts...)
	}
	if err != nil {
		return fmt.Errorf("building manifest node %q: %w", decl.Name, err)
	}

	for _, child := range decl.Children {
		if err := t.buildNode(node, child, prototypes); err != nil {
			return err
		}
	}
	return nil
}

// Command schemadoc prints the request and response contract of every
// endpoint as a stream of YAML documents, one per endpoint.
//
// Usage:
//
//	go run ./cmd/schemadoc > contracts.yaml
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/phrazzld/persona-api/internal/schema"
	"github.com/phrazzld/persona-api/internal/service"
	"gopkg.in/yaml.v3"
)

// contract is one YAML document in the output.
type contract struct {
	Endpoint string             `yaml:"endpoint"`
	Role     string             `yaml:"role"`
	Schema   schema.Description `yaml:"schema"`
}

func main() {
	if err := write(os.Stdout); err != nil {
		log.Fatalf("schemadoc: %v", err)
	}
}

// write checks every endpoint schema and encodes its description to w.
func write(w io.Writer) error {
	if err := service.CheckAll(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, ns := range service.Catalog() {
		doc := contract{
			Endpoint: ns.Endpoint,
			Role:     ns.Role,
			Schema:   schema.Describe(ns.Schema),
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode %s: %w", ns.Endpoint, err)
		}
	}
	return enc.Close()
}

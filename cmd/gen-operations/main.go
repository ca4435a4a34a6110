// Command gen-operations writes models/operationRegistry.go from the
// Query and Mutation fields of the GraphQL schema.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmdatafocus/grange_backend/models"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

func main() {
	schemaDir := flag.String("schema", "graph/schema", "directory holding the *.graphqls files")
	out := flag.String("out", "models/operationRegistry.go", "output file")
	flag.Parse()

	schema, err := loadSchema(*schemaDir)
	if err != nil {
		log.Fatal(err)
	}
	src, err := render(collect(schema))
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func loadSchema(dir string) (*ast.Schema, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.graphqls"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no schema files in %s", dir)
	}
	sort.Strings(files)
	sources := make([]*ast.Source, 0, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &ast.Source{Name: f, Input: string(b)})
	}
	schema, gqlErr := gqlparser.LoadSchema(sources...)
	if gqlErr != nil {
		return nil, gqlErr
	}
	return schema, nil
}

// collect lists queries then mutations, each sorted by name.
func collect(schema *ast.Schema) []models.OperationDefinition {
	var defs []models.OperationDefinition
	add := func(def *ast.Definition, opType int) {
		if def == nil {
			return
		}
		var group []models.OperationDefinition
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			group = append(group, models.OperationDefinition{
				Name:        f.Name,
				Type:        opType,
				Description: strings.TrimSpace(f.Description),
			})
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		defs = append(defs, group...)
	}
	add(schema.Query, models.OperationQuery)
	add(schema.Mutation, models.OperationMutation)
	return defs
}

func render(defs []models.OperationDefinition) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by cmd/gen-operations; DO NOT EDIT.\n\n")
	buf.WriteString("package models\n\n")
	buf.WriteString("var OperationRegistry = []OperationDefinition{\n")
	for _, d := range defs {
		opType := "OperationQuery"
		if d.Type == models.OperationMutation {
			opType = "OperationMutation"
		}
		fmt.Fprintf(&buf, "\t{Name: %q, Type: %s, Description: %q},\n", d.Name, opType, d.Description)
	}
	buf.WriteString("}\n")
	return format.Source(buf.Bytes())
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kegelbahn/tenpin/pkg/apis"
	"github.com/kegelbahn/tenpin/pkg/schema"
)

func main() {
	outputDir := flag.String("output", "api", "Output directory for generated schemas")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	generator := schema.NewGenerator()

	schemaJSON, err := generator.GenerateJSONSchema(apis.ScorecardMapping{})
	if err != nil {
		log.Fatalf("Failed to generate schema for ScorecardMapping: %v", err)
	}

	jsonFile := filepath.Join(*outputDir, "scorecard-mapping-v1.json")
	if err := os.WriteFile(jsonFile, []byte(schemaJSON), 0644); err != nil {
		log.Fatalf("Failed to write JSON schema: %v", err)
	}

	fmt.Printf("Generated JSON schema: %s\n", jsonFile)

	yamlFile := filepath.Join(*outputDir, "scorecard-mapping-example.yaml")
	if err := os.WriteFile(yamlFile, []byte(yamlExample), 0644); err != nil {
		log.Fatalf("Failed to write YAML example: %v", err)
	}

	fmt.Printf("Generated YAML example: %s\n", yamlFile)
}

// yamlExample mirrors the mapping shipped with the league CSV importer.
const yamlExample = `# ScorecardMapping Example Configuration
# Maps columns of a scorecard CSV export onto game fields.

kind: ScorecardMapping
version: v1
metadata:
  name: "League Export"
  description: "Field mapping for weekly league scorecard exports"
dataset: "league-export"
dateFormat: "2006-01-02T15:04:05Z"
fieldMappings:
  - source: "player_name"
    sourceType: "string"
    target: "Player"
    targetType: "string"
    required: false
  - source: "game"
    sourceType: "string"
    target: "Notation"
    targetType: "string"
    required: true
  - source: "league"
    sourceType: "string"
    target: "Metadata.League"
    targetType: "string"
    required: false
  - source: "played"
    sourceType: "datetime"
    target: "Metadata.PlayedAt"
    targetType: "datetime"
    required: false
`

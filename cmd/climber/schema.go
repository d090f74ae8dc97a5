package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Emit the JSON schema for config files",
	Long: `Generate a JSON schema describing the climber config file format.

Point your editor's YAML language server at the schema to get
completion and validation while editing configs.

Examples:
  climber schema                          # Print to stdout
  climber schema --out climber.schema.json`,
	Run: runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Write schema to file instead of stdout")
}

func runSchema(_ *cobra.Command, _ []string) {
	schema := buildConfigSchema()

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: marshal schema: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if flagSchemaOut == "" {
		os.Stdout.Write(data)
		return
	}

	if dir := filepath.Dir(flagSchemaOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: create output dir: %v\n", err)
			os.Exit(1)
		}
	}
	if err := os.WriteFile(flagSchemaOut, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Schema written to %s\n", flagSchemaOut)
}

func buildConfigSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&config.ClimberConfig{})
	schema.Title = "TUI Climber Config"
	schema.Description = "Physics, generation, difficulty and theme settings for climber runs."
	return schema
}

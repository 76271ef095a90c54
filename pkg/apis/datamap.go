package apis

import "fmt"

// ScorecardMapping describes how columns of a scorecard export map onto
// game fields. Mappings live in versioned YAML files next to the data
// they describe, so new export formats need no code changes.
type ScorecardMapping struct {
	Kind          string         `json:"kind" example:"ScorecardMapping" yaml:"kind"`
	Version       string         `json:"version" example:"v1" yaml:"version"`
	Metadata      Metadata       `json:"metadata" yaml:"metadata"`
	Dataset       string         `json:"dataset" example:"league-export" yaml:"dataset"`
	FieldMappings []FieldMapping `json:"fieldMappings" yaml:"fieldMappings"`
	DateFormat    string         `json:"dateFormat" example:"2006-01-02T15:04:05Z" yaml:"dateFormat"`
}

type Metadata struct {
	Name        string `json:"name" example:"League Export" yaml:"name"`
	Description string `json:"description" example:"Mapping for weekly league scorecard exports" yaml:"description"`
}

// FieldMapping binds one source column to one game field. Target is the
// Go field path on the game, dotted for nested fields ("Metadata.League").
type FieldMapping struct {
	Source     string `json:"source" example:"player_name" yaml:"source"`
	SourceType string `json:"sourceType" example:"string" yaml:"sourceType"`
	Target     string `json:"target" example:"Player" yaml:"target"`
	TargetType string `json:"targetType" example:"string" yaml:"targetType"`
	Required   bool   `json:"required" example:"true" yaml:"required"`
}

func (sm *ScorecardMapping) Validate() error {
	if sm.Kind == "" {
		return fmt.Errorf("kind is required")
	}
	if sm.Version == "" {
		return fmt.Errorf("version is required")
	}
	if sm.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if sm.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if len(sm.FieldMappings) == 0 {
		return fmt.Errorf("at least one field mapping is required")
	}
	for i, fm := range sm.FieldMappings {
		if fm.Source == "" {
			return fmt.Errorf("fieldMappings[%d] must have source defined", i)
		}
	}
	return nil
}

type MappingError struct {
	Message string `json:"message" example:"missing source field: notation"`
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error: %s", e.Message)
}

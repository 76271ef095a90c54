package reader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/pkg/apis"
)

// GameMapper builds games from raw records by following a scorecard
// mapping. Totals and throws are not mapped; the storage layer derives
// them from the notation on save.
type GameMapper struct {
	cfg *apis.ScorecardMapping
}

func NewGameMapper(cfg *apis.ScorecardMapping) *GameMapper {
	return &GameMapper{
		cfg: cfg,
	}
}

func (m *GameMapper) Map(record map[string]string, opt *MappingOptions) (domain.Game, error) {
	if err := m.cfg.Validate(); err != nil {
		return domain.Game{}, err
	}

	game := domain.Game{}
	val := reflect.ValueOf(&game).Elem()

	for _, fm := range m.cfg.FieldMappings {
		sourceVal, ok := record[fm.Source]
		if !ok || sourceVal == "" {
			if fm.Required {
				return domain.Game{}, fmt.Errorf("missing required column %q", fm.Source)
			}
			continue
		}

		path := strings.Split(fm.Target, ".")

		var err error
		if len(path) > 1 {
			err = SetNestedField(val, path, sourceVal, fm.SourceType, m.cfg.DateFormat)
		} else {
			err = SetFlatField(val, path[0], sourceVal, fm.SourceType, m.cfg.DateFormat)
		}
		if err != nil && (fm.Required || (opt != nil && opt.Strict)) {
			return domain.Game{}, err
		}
	}

	return game, nil
}

// Compile-time interface assertions
var _ Mapper = (*GameMapper)(nil)

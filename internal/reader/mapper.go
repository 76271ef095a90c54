package reader

import (
	"github.com/kegelbahn/tenpin/internal/domain"
	"github.com/kegelbahn/tenpin/pkg/apis"
)

// MappingOptions tune how strictly a record must match the mapping.
// With Strict set, any field that fails to convert rejects the record,
// not just the required ones.
type MappingOptions struct {
	Strict bool
}

type Mapper interface {
	Map(record map[string]string, opt *MappingOptions) (domain.Game, error)
}

type MappingLoader interface {
	Load(validate bool) (*apis.ScorecardMapping, error)
}

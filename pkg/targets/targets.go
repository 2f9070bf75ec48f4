package targets

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	scruberrors "github.com/arthur-debert/scrub/pkg/errors"
)

// PathsKey is the koanf key holding the ordered target list
const PathsKey = "delete.paths"

//go:embed embedded/targets.toml
var embeddedTargets []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load returns the target list compiled into the binary
func Load() ([]string, error) {
	return Parse(embeddedTargets)
}

// Content returns the raw embedded TOML
func Content() string {
	return string(embeddedTargets)
}

// Parse reads a target list from TOML bytes. Order and duplicates are kept
// exactly as written.
func Parse(data []byte) ([]string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		PathsKey: []string{},
	}, "."), nil); err != nil {
		return nil, scruberrors.Wrap(err, scruberrors.ErrInternal, "failed to load defaults")
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, scruberrors.Wrap(err, scruberrors.ErrConfigParse, "failed to parse target list")
	}

	paths := k.Strings(PathsKey)
	if paths == nil {
		paths = []string{}
	}

	for i, p := range paths {
		if strings.TrimSpace(p) == "" {
			return nil, scruberrors.Newf(scruberrors.ErrConfigValid, "target %d is empty", i+1).
				WithDetail("index", i)
		}
	}

	return paths, nil
}

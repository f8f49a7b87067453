package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/accphys/madview/internal/logger"
)

type configBuilder struct {
	docs []document
	err  error

	userFile       string
	userFileLoaded bool
	explicitFile   bool

	log *logger.Logger
}

func newConfigBuilder(log *logger.Logger) *configBuilder {
	if log == nil {
		log = logger.Nop()
	}
	return &configBuilder{
		docs: make([]document, 0, 2),
		log:  log,
	}
}

// withDefaults parses the bundled default document.
func (b *configBuilder) withDefaults() *configBuilder {
	doc, err := parseYAML(defaultYAML)
	if err != nil {
		b.err = errors.Join(b.err, &ParseError{Err: err})
		return b
	}

	b.docs = append(b.docs, doc)
	return b
}

// withUserFile parses the user override document. When path is empty, the
// location is resolved from the MADVIEW_CONFIG environment variable and then
// the per-user default path; a missing file at a resolved location is
// treated as an empty override. An explicitly given path must exist.
func (b *configBuilder) withUserFile(path string) *configBuilder {
	b.explicitFile = path != ""

	if path == "" {
		resolved, err := ResolveUserFile()
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		path = resolved
	}
	b.userFile = path

	doc, err := parseYAMLFile(path)
	if err != nil {
		if !b.explicitFile && errors.Is(err, os.ErrNotExist) {
			b.log.Debug().Str("path", path).Msg("no user override file; defaults apply unchanged")
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}

	b.log.Debug().Str("path", path).Msg("loaded user override file")
	b.userFileLoaded = true
	b.docs = append(b.docs, doc)
	return b
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := document{}
	for _, doc := range b.docs {
		var err error
		merged, err = mergeDocs(merged, doc, b.log)
		if err != nil {
			return nil, err
		}
	}

	typed, err := decodeDocument(merged)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Document:       typed,
		UserFile:       b.userFile,
		UserFileLoaded: b.userFileLoaded,
		raw:            merged,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveUserFile picks the override location: MADVIEW_CONFIG when set,
// otherwise the per-user default path.
func ResolveUserFile() (string, error) {
	var params envParams
	if err := parseEnv(&params); err != nil {
		return "", err
	}
	if params.UserFile != "" {
		return params.UserFile, nil
	}

	return UserConfigPath()
}

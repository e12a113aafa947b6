package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/poaf/pkg/core"
)

// FileConfig is the shape of poaf.yaml. Every field is optional.
//
//	data_dir: .PRO
//	ontology_url: http://purl.obolibrary.org/obo/pr.obo
//	annotation_url: https://proconsortium.org/download/current/PAF.txt
//	id_column: PRO_ID
//	annotation_column: Object_term
//	empty_query: none
//	display_limit: 10
//	offline: false
type FileConfig struct {
	DataDir          string `yaml:"data_dir"`
	OntologyURL      string `yaml:"ontology_url"`
	AnnotationURL    string `yaml:"annotation_url"`
	OntologyFile     string `yaml:"ontology_file"`
	AnnotationFile   string `yaml:"annotation_file"`
	IDColumn         string `yaml:"id_column"`
	AnnotationColumn string `yaml:"annotation_column"`
	EmptyQuery       string `yaml:"empty_query"`
	DisplayLimit     int    `yaml:"display_limit"`
	Offline          bool   `yaml:"offline"`
}

// LoadConfig reads a config file. A missing file yields a zero config.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if _, err := core.ParseEmptyQueryPolicy(cfg.EmptyQuery); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.DisplayLimit < 0 {
		return cfg, fmt.Errorf("invalid config %s: display_limit must not be negative", path)
	}
	return cfg, nil
}

// Options converts the file settings into functional options.
// Options given later on the command line override these.
func (c FileConfig) Options() []Option {
	policy, _ := core.ParseEmptyQueryPolicy(c.EmptyQuery)
	return []Option{
		WithOntologyURL(c.OntologyURL),
		WithAnnotationURL(c.AnnotationURL),
		WithFileNames(c.OntologyFile, c.AnnotationFile),
		WithIDColumn(c.IDColumn),
		WithAnnotationColumn(c.AnnotationColumn),
		WithEmptyQueryPolicy(policy),
		WithOffline(c.Offline),
	}
}

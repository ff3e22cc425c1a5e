package types

// OutputFormat selects how extracted records are printed.
type OutputFormat string

const (
	OutputYAML  OutputFormat = "yaml"
	OutputJSON  OutputFormat = "json"
	OutputTable OutputFormat = "table"
)

// CatalogConfig holds settings for the record catalog.
type CatalogConfig struct {
	// Dir is the directory holding specs.db and export files.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all settings read from specfields.yaml and the environment.
type Config struct {
	Defaults Defaults      `json:"defaults" yaml:"defaults" mapstructure:"defaults"`
	Catalog  CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Output   OutputFormat  `json:"output" yaml:"output" mapstructure:"output"`
}

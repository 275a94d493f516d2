package sources

// Config holds configuration for the input sources of the pipeline.
type Config struct {
	// APIResponseFile is the path or object key of the article API response.
	APIResponseFile string `mapstructure:"api_response_file" default:"api_response.json"`
	// ReferenceDataFile is the path or object key of the editorial review workbook.
	ReferenceDataFile string `mapstructure:"reference_data_file" default:"reference_data.xlsx"`
	// ReferenceBackend selects where the reference data comes from (workbook, database).
	ReferenceBackend string `mapstructure:"reference_backend" default:"workbook"`
	// UseStorage reads the source files from object storage instead of local disk.
	UseStorage bool `mapstructure:"use_storage" default:"false"`
}

const (
	BackendWorkbook = "workbook"
	BackendDatabase = "database"
)

// IsValidBackend checks if the configured reference backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.ReferenceBackend {
	case BackendWorkbook, BackendDatabase:
		return true
	default:
		return false
	}
}

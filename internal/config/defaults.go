package config

const (
	defaultDataDir            = "~/.local/share/gazette"
	defaultLogDir             = "~/.local/share/gazette/logs"
	defaultReportDir          = "~/gazette-reports"
	defaultAutoMatchThreshold = 25
	defaultPDLBaseURL         = "https://api.peopledatalabs.com/v5"
	defaultDirectoryBaseURL   = "https://www.zabasearch.com"
	defaultSearchBaseURL      = "https://search.patentsview.org/api/v1"
	defaultRequestTimeout     = 30
	defaultIngestPageSize     = 100
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// defaultStaleFields lists provider payload fields expected to hold lists or
// objects. When one of these arrives typed as a boolean the payload is a
// degraded presence-flag response and must be refetched, never persisted as
// final data.
var defaultStaleFields = []string{
	"emails",
	"phone_numbers",
	"profiles",
	"education",
	"experience",
	"location_names",
	"location_locality",
	"location_region",
	"street_addresses",
	"job_title_levels",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ReportDir: defaultReportDir,
		},
		Matching: Matching{
			AutoMatchThreshold: defaultAutoMatchThreshold,
		},
		Enrichment: Enrichment{
			PDLBaseURL:       defaultPDLBaseURL,
			DirectoryBaseURL: defaultDirectoryBaseURL,
			RequestTimeout:   defaultRequestTimeout,
			StaleFields:      append([]string(nil), defaultStaleFields...),
		},
		Ingest: Ingest{
			SearchBaseURL:  defaultSearchBaseURL,
			RequestTimeout: defaultRequestTimeout,
			PageSize:       defaultIngestPageSize,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

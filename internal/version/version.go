package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/csabourin/inkscape-plugin-CSVColumnExporter/internal/version.Version=...
	Commit  = "unknown" // -X github.com/csabourin/inkscape-plugin-CSVColumnExporter/internal/version.Commit=...
	Date    = "unknown" // -X github.com/csabourin/inkscape-plugin-CSVColumnExporter/internal/version.Date=...
)

// Info is the build information in a single value.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

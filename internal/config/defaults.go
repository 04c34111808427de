package config

const (
	defaultConfigPath      = "~/.config/rendezvous/config.toml"
	defaultDataDir         = "~/.local/share/rendezvous"
	defaultDocumentsDir    = "~/.local/share/rendezvous/documents"
	defaultLogDir          = "~/.local/share/rendezvous/logs"
	defaultPageWidth       = 210.0
	defaultPageHeight      = 297.0
	defaultMargin          = 20.0
	defaultLineHeightRatio = 0.35
	defaultSignatureOffset = 60.0
	defaultAttendanceRows  = 15
	defaultWrapCacheSize   = 512
	defaultCatalogDriver   = "sqlite"
	defaultImpactDelay     = 6
	defaultReportBaseURL   = "http://localhost:3000/rapports"
	defaultNotifyTimeout   = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			DocumentsDir: defaultDocumentsDir,
			LogDir:       defaultLogDir,
		},
		Layout: Layout{
			PageWidth:       defaultPageWidth,
			PageHeight:      defaultPageHeight,
			Margin:          defaultMargin,
			LineHeightRatio: defaultLineHeightRatio,
			SignatureOffset: defaultSignatureOffset,
			AttendanceRows:  defaultAttendanceRows,
			WrapCacheSize:   defaultWrapCacheSize,
		},
		Catalog: Catalog{
			Driver: defaultCatalogDriver,
		},
		Impact: Impact{
			DelayMonths:   defaultImpactDelay,
			ReportBaseURL: defaultReportBaseURL,
		},
		Notifications: Notifications{
			RequestTimeout:    defaultNotifyTimeout,
			Validation:        true,
			Cancellation:      true,
			ProgramGenerated:  true,
			ImpactPlanned:     true,
			ImpactEvaluations: true,
			Errors:            true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

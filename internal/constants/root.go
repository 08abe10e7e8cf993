package constants

const (
	AppName           = "lifetrack"
	DefaultConfigPath = "~/.config/lifetrack/lifetrack.db"
	Version           = "v0.1.0"

	// DateFormat is the canonical date key used across every domain (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifetrack-"
	BackupFileSuffix = ".db"

	// Log rotation
	LogDirName    = "logs"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// StreakLookbackDays bounds every backward streak walk.
	StreakLookbackDays = 365

	// HygienePassThreshold is the completion percentage at which a hygiene day counts as done.
	HygienePassThreshold = 80

	// DailyChecks is the number of binary checks behind the daily completion percentage.
	DailyChecks = 3

	// Recent list sizes
	RecentDopamineLimit = 5
	MoodHistoryLimit    = 10
	MoodTrendLimit      = 14
	ConsistencyDays     = 7
	FrequencyWeeks      = 8
	MoodEnergyLimit     = 30
)

package constants

const (
	AppName        = "sanctum"
	Version        = "v0.3.0"
	DefaultDataDir = "~/.config/sanctum"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage file names
	DaysFileName   = "days.json"
	QuestsFileName = "quests.json"
	TasksFileName  = "tasks.json"
	LockfileName   = "sanctum.lock"
	ExportFileName = "dark_sanctum_export.json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "sanctum-"
	BackupFileSuffix = ".json"

	// Weekly aggregation
	DaysPerWeek      = 7
	MaxWeeklyScore   = 21
	TaskXPPerTask    = 5
	TaskXPMax        = 100
	RecentFailWindow = 3
)

package constants

const (
	AppName            = "phoenix"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/phoenix/phoenix.db"
	Version            = "v0.3.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "phoenix-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "phoenix-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.stevedee.phoenix"
)

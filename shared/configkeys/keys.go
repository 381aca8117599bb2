package configkeys

const (
	delimiter = "."

	ConfigLogPrefix = "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"

	ConfigShellPrefix      = "shell"
	ConfigShellHistoryFile = ConfigShellPrefix + delimiter + "history_file"
	ConfigShellPrompt      = ConfigShellPrefix + delimiter + "prompt"

	ConfigTablePrefix       = "table"
	ConfigTableFoldCase     = ConfigTablePrefix + delimiter + "fold_case"
	ConfigTableTrackRelease = ConfigTablePrefix + delimiter + "track_release"
)

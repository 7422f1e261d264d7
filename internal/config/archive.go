package config

// ArchiveConfig controls the filesystem archive of saved brackets.
type ArchiveConfig struct {
	Enabled       bool
	Dir           string
	RetentionDays int
}

func loadArchive() ArchiveConfig {
	return ArchiveConfig{
		Enabled:       boolEnvOrDefault(envArchiveOn, defaultArchiveOn),
		Dir:           envOrDefault(envArchiveDir, defaultArchiveDir),
		RetentionDays: intEnvOrDefault(envArchiveDays, defaultArchiveDays),
	}
}

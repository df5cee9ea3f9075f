package config

// Settings is the operator-editable server configuration persisted as
// JSON next to the data directory.
type Settings struct {
	Server ServerSettings `json:"server"`
	Data   DataSettings   `json:"data"`
	Remote RemoteSettings `json:"remote"`
	Sync   SyncSettings   `json:"sync"`
	Log    LogSettings    `json:"log"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DataSettings locates the local store.
type DataSettings struct {
	Dir string `json:"dir"`
}

// RemoteSettings points at the hosted backend. Leaving either value
// empty disables remote calls entirely; the system then runs
// local-only. The SUPABASE_URL and SUPABASE_ANON_KEY environment
// variables override these fields.
type RemoteSettings struct {
	URL     string `json:"url"`
	AnonKey string `json:"anonKey"`
}

// SyncSettings tunes the reconciliation loop.
type SyncSettings struct {
	IntervalMinutes int `json:"intervalMinutes"`
}

// LogSettings configures file logging.
type LogSettings struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays"`
}

// DefaultSettings returns the configuration a fresh install runs with.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{Host: "0.0.0.0", Port: 8080},
		Data:   DataSettings{Dir: "./data"},
		Sync:   SyncSettings{IntervalMinutes: 5},
		Log: LogSettings{
			File:       "",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

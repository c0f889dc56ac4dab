package launcher

// Defaults bundles the baseline values used before config files and flags override them.
type Defaults struct {
	Buffer  BufferDefaults
	Logging LoggingDefaults
}

// BufferDefaults describes the buffer a command packs into when nothing else is given.
type BufferDefaults struct {
	Capacity int    // Buffer capacity in bits.
	Masked   bool   // Whether commands also report the written/unused masks.
	Order    string // Byte order of byte-string field values (big|little).
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    // Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string // Log output format (text vs json).
	Color     bool   // Whether to use ANSI color codes in logs.
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Buffer: BufferDefaults{
			Capacity: 64,
			Masked:   false,
			Order:    "big",
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}

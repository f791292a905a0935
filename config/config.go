package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

var (
	// Set via FPGOLDEN_WORKERS in the environment
	Workers int
	// Set via FPGOLDEN_CHUNK in the environment
	Chunk int
	// Set via FPGOLDEN_NAN_SIGN in the environment
	NaNSign string
	// Set via FPGOLDEN_SEED in the environment, zero means seed from the clock
	Seed int64
	// Set via FPGOLDEN_MIX in the environment
	Mix string
	// Set via FPGOLDEN_DEBUG in the environment
	Debug bool
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"FPGOLDEN_WORKERS":  {"FPGOLDEN_WORKERS", Workers, "Number of evaluation workers (default GOMAXPROCS)"},
		"FPGOLDEN_CHUNK":    {"FPGOLDEN_CHUNK", Chunk, "Records evaluated per batch (default 4096)"},
		"FPGOLDEN_NAN_SIGN": {"FPGOLDEN_NAN_SIGN", NaNSign, "Sign of NaN results: positive or resolved (default positive)"},
		"FPGOLDEN_SEED":     {"FPGOLDEN_SEED", Seed, "Seed of the vector generator (default from the clock)"},
		"FPGOLDEN_MIX":      {"FPGOLDEN_MIX", Mix, "Operand mix of the vector generator, e.g. nan=1.25,zero=1.25,tiny=5,overflow=5"},
		"FPGOLDEN_DEBUG":    {"FPGOLDEN_DEBUG", Debug, "Show additional debug information (e.g. FPGOLDEN_DEBUG=1)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func setDefaults() {
	Workers = runtime.GOMAXPROCS(0)
	Chunk = 4096
	NaNSign = "positive"
	Seed = 0
	Mix = ""
	Debug = false
}

// LoadConfig resets every value to its default and applies the environment.
// Invalid settings are logged and ignored.
func LoadConfig() {
	setDefaults()

	if debug := clean("FPGOLDEN_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	if w := clean("FPGOLDEN_WORKERS"); w != "" {
		val, err := strconv.Atoi(w)
		if err != nil || val <= 0 {
			slog.Error("invalid setting must be greater than zero", "FPGOLDEN_WORKERS", w, "error", err)
		} else {
			Workers = val
		}
	}

	if c := clean("FPGOLDEN_CHUNK"); c != "" {
		val, err := strconv.Atoi(c)
		if err != nil || val <= 0 {
			slog.Error("invalid setting must be greater than zero", "FPGOLDEN_CHUNK", c, "error", err)
		} else {
			Chunk = val
		}
	}

	if ns := clean("FPGOLDEN_NAN_SIGN"); ns != "" {
		switch ns {
		case "positive", "resolved":
			NaNSign = ns
		default:
			slog.Error("invalid setting, ignoring", "FPGOLDEN_NAN_SIGN", ns)
		}
	}

	if s := clean("FPGOLDEN_SEED"); s != "" {
		val, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			slog.Error("invalid setting, ignoring", "FPGOLDEN_SEED", s, "error", err)
		} else {
			Seed = val
		}
	}

	Mix = clean("FPGOLDEN_MIX")
}

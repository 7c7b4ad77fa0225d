package config

import "github.com/spf13/viper"

// Logger logger config struct
type Logger struct {
	Level           string
	Format          string
	Output          string
	OutputFile      string
	Desensitization *Desensitization
}

// Desensitization log field masking config struct
type Desensitization struct {
	Enabled         bool
	SensitiveFields []string
	MaskChar        string
	FixedMaskLength int
}

// Default sensitive field patterns
var defaultSensitiveFields = []string{
	"password", "token", "access_token", "refresh_token", "authorization", "cookie", "secret",
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:           getStringOrDefault(v, "logger.level", "info"),
		Format:          getStringOrDefault(v, "logger.format", "json"),
		Output:          getStringOrDefault(v, "logger.output", "stdout"),
		OutputFile:      v.GetString("logger.output_file"),
		Desensitization: getDesensitizationConfig(v),
	}
}

func getDesensitizationConfig(v *viper.Viper) *Desensitization {
	fields := defaultSensitiveFields
	if v.IsSet("logger.desensitization.sensitive_fields") {
		fields = v.GetStringSlice("logger.desensitization.sensitive_fields")
	}
	return &Desensitization{
		Enabled:         getBoolOrDefault(v, "logger.desensitization.enabled", true),
		SensitiveFields: fields,
		MaskChar:        getStringOrDefault(v, "logger.desensitization.mask_char", "*"),
		FixedMaskLength: getIntOrDefault(v, "logger.desensitization.fixed_mask_length", 6),
	}
}

package logger

import (
	"regexp"
	"strings"

	"github.com/ncobase/boardfront/config"
	"github.com/sirupsen/logrus"
)

// bearerPattern catches credentials that slip into free-form strings.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9\-_.=]+`)

// Desensitizer handles sensitive data masking in log fields
type Desensitizer struct {
	config *config.Desensitization
	mask   string
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	maskChar := cfg.MaskChar
	if maskChar == "" {
		maskChar = "*"
	}
	length := cfg.FixedMaskLength
	if length <= 0 {
		length = 6
	}
	return &Desensitizer{
		config: cfg,
		mask:   strings.Repeat(maskChar, length),
	}
}

// DesensitizeFields processes log fields and masks sensitive data
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if !d.config.Enabled {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		result[key] = d.desensitizeValue(key, value, 0)
	}
	return result
}

// desensitizeValue processes a single value, descending into maps
func (d *Desensitizer) desensitizeValue(key string, value any, depth int) any {
	if value == nil || depth > 10 {
		return value
	}

	if d.isSensitiveField(key) {
		if s, ok := value.(string); ok && s == "" {
			return s
		}
		return d.mask
	}

	switch v := value.(type) {
	case string:
		return bearerPattern.ReplaceAllString(v, "Bearer "+d.mask)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = d.desensitizeValue(k, item, depth+1)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, item := range v {
			out[k] = d.desensitizeValue(k, item, depth+1).(string)
		}
		return out
	default:
		return value
	}
}

// isSensitiveField checks if field name contains sensitive keywords
func (d *Desensitizer) isSensitiveField(fieldName string) bool {
	if fieldName == "" {
		return false
	}
	lowerName := strings.ToLower(fieldName)
	for _, sensitiveField := range d.config.SensitiveFields {
		if strings.Contains(lowerName, strings.ToLower(sensitiveField)) {
			return true
		}
	}
	return false
}

// DesensitizeHook masks entry fields before they are formatted.
type DesensitizeHook struct {
	d *Desensitizer
}

// NewDesensitizeHook creates a logrus hook around d.
func NewDesensitizeHook(d *Desensitizer) *DesensitizeHook {
	return &DesensitizeHook{d: d}
}

// Levels returns all levels
func (h *DesensitizeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire rewrites the entry fields and message
func (h *DesensitizeHook) Fire(entry *logrus.Entry) error {
	entry.Data = h.d.DesensitizeFields(entry.Data)
	entry.Message = bearerPattern.ReplaceAllString(entry.Message, "Bearer "+h.d.mask)
	return nil
}

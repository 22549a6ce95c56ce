package logging

// keyValuePairSize represents the number of elements in a key-value pair.
const keyValuePairSize = 2

// CronAdapter bridges the structured Logger to the key-value logging
// interface the cron scheduler expects. It satisfies cron.Logger without
// importing the cron package.
type CronAdapter struct {
	log Logger
}

// NewCronAdapter creates a scheduler logger backed by the given Logger.
func NewCronAdapter(log Logger) *CronAdapter {
	return &CronAdapter{log: log}
}

// Info logs scheduler events with key-value pairs.
func (a *CronAdapter) Info(msg string, keysAndValues ...any) {
	a.log.Info(msg, toFields(keysAndValues)...)
}

// Error logs scheduler failures with key-value pairs.
func (a *CronAdapter) Error(err error, msg string, keysAndValues ...any) {
	fields := append([]Field{Error(err)}, toFields(keysAndValues)...)
	a.log.Error(msg, fields...)
}

// toFields converts key-value pairs to a Field slice.
// Keys that are not strings are skipped, as is a trailing key with no value.
func toFields(keysAndValues []any) []Field {
	fields := make([]Field, 0, len(keysAndValues)/keyValuePairSize)
	for i := 0; i < len(keysAndValues); i += keyValuePairSize {
		if i+1 >= len(keysAndValues) {
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, Any(key, keysAndValues[i+1]))
	}
	return fields
}

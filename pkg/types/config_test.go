package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "zero value", config: Config{}},
		{name: "data dir only", config: Config{DataDir: "/tmp/camino"}},
		{name: "debug level", config: Config{LogLevel: "debug"}},
		{name: "info level", config: Config{LogLevel: "info"}},
		{name: "warn level", config: Config{LogLevel: "warn"}},
		{name: "error level", config: Config{LogLevel: "error"}},
		{name: "unknown level", config: Config{LogLevel: "verbose"}, wantErr: ErrLogLevelUnknown},
		{name: "uppercase level", config: Config{LogLevel: "INFO"}, wantErr: ErrLogLevelUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHeaderMismatchErrorMessage(t *testing.T) {
	err := &HeaderMismatchError{Missing: []string{"pace_gain", "fme"}}
	assert.Equal(t, "csv header missing required columns: pace_gain, fme", err.Error())
}

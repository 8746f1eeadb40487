package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		field   string
	}{
		{name: "empty", cfg: Config{}},
		{name: "full", cfg: Config{
			Mode:          ModeBuild,
			Extensions:    []string{".jsx", ".tsx", ".js"},
			VirtualPrefix: "virtual:ui/",
			Workers:       4,
			Warnings:      WarningsConfig{RepeatDelay: "250ms"},
			Watch:         WatchConfig{Debounce: "50ms", Ignore: []string{"**/dist/**"}},
		}},
		{name: "bad mode", cfg: Config{Mode: "prod"}, wantErr: true, field: "mode"},
		{name: "extension without dot", cfg: Config{Extensions: []string{"tsx"}}, wantErr: true, field: "extensions[0]"},
		{name: "prefix without slash", cfg: Config{VirtualPrefix: "virtual:ui"}, wantErr: true, field: "virtualPrefix"},
		{name: "negative workers", cfg: Config{Workers: -1}, wantErr: true, field: "workers"},
		{name: "bad duration", cfg: Config{Warnings: WarningsConfig{RepeatDelay: "1 second"}}, wantErr: true, field: "warnings.repeatDelay"},
		{name: "bad glob", cfg: Config{Watch: WatchConfig{Ignore: []string{"[a-"}}}, wantErr: true, field: "watch.ignore[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))

			var de *oerrors.DetailError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestConvertValidationError_Nil(t *testing.T) {
	assert.NoError(t, ConvertValidationError(nil))
}

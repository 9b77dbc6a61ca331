package config

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()
	assert.NotNil(t, cfg)
	assert.Nil(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Color = "sometimes"
	assert.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.EventLog = ""
	assert.Error(t, cfg.Validate())
}

func TestLevel(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogLevel = "debug"
	assert.Equal(t, log.DebugLevel, cfg.Level())

	cfg.LogLevel = "bogus"
	assert.Equal(t, log.WarnLevel, cfg.Level())
}

func TestUseColor(t *testing.T) {
	cases := map[string][2]bool{
		ColorAlways: {true, true},
		ColorNever:  {false, false},
		ColorAuto:   {false, true},
	}

	for mode, want := range cases {
		t.Run(mode, func(t *testing.T) {
			cfg := &Configuration{Color: mode}
			assert.Equal(t, want[0], cfg.UseColor(false))
			assert.Equal(t, want[1], cfg.UseColor(true))
		})
	}
}

func TestHistoryPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg := &Configuration{HistoryFile: "$HOME/.history"}
	path, err := cfg.HistoryPath()
	assert.Nil(t, err)
	assert.Equal(t, "/home/tester/.history", path)

	cfg.HistoryFile = ""
	path, err = cfg.HistoryPath()
	assert.Nil(t, err)
	assert.Equal(t, "", path)
}

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := log.New(io.Discard)
	if err := InitializeFs(fs, "/etc/goosecli", logger); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := LoadFs(fs, "/etc/goosecli/config.yaml")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("OpenAppLog", func(t *testing.T) {
		fd, err := cfg.OpenAppLog()
		assert.Nil(t, err)
		fd.Close()

		exists, err := afero.Exists(fs, "/etc/goosecli/app.log")
		assert.Nil(t, err)
		assert.True(t, exists)
	})

	t.Run("EventLog", func(t *testing.T) {
		fd, err := cfg.OpenEventLog()
		assert.Nil(t, err)
		_, err = fd.WriteString("{}\n")
		assert.Nil(t, err)
		fd.Close()

		fd, err = cfg.ReadEventLog()
		assert.Nil(t, err)
		defer fd.Close()
		contents, err := io.ReadAll(fd)
		assert.Nil(t, err)
		assert.Equal(t, "{}\n", string(contents))
	})

	t.Run("KeepsExisting", func(t *testing.T) {
		assert.Nil(t, afero.WriteFile(fs, "/etc/goosecli/config.yaml", []byte("color: never\nlog_level: info\nevent_log: e.log\n"), 0600))
		assert.Nil(t, InitializeFs(fs, "/etc/goosecli", logger))

		cfg, err := LoadFs(fs, "/etc/goosecli")
		assert.Nil(t, err)
		assert.Equal(t, ColorNever, cfg.Color)
	})
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, "/cfg/config.yaml", []byte("color: auto\nlog_level: warn\nevent_log: e.log\nssh_port: 22\n"), 0600))

	_, err := LoadFs(fs, "/cfg")
	assert.Error(t, err)
}

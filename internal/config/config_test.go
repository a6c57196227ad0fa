package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.PostProcess.Disabled {
		t.Error("PostProcess.Disabled = true, want false")
	}
	if len(cfg.PostProcess.Rules) != 0 {
		t.Errorf("PostProcess.Rules = %v, want none", cfg.PostProcess.Rules)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value over limit returns error", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid config passes validation",
			cfg: Config{
				Workers: 4,
				PostProcess: PostProcessConfig{Rules: []RuleConfig{
					{Selector: "h2", Attr: "class", Value: "subtitle"},
					{Selector: "div > p:first-child", Attr: "data-lead", Value: ""},
				}},
			},
		},
		{
			name:    "negative workers",
			cfg:     Config{Workers: -1},
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "too many workers",
			cfg:     Config{Workers: MaxWorkers + 1},
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "output dir too long",
			cfg:     Config{Output: OutputConfig{DefaultDir: strings.Repeat("d", MaxDirLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "empty selector",
			cfg: Config{PostProcess: PostProcessConfig{Rules: []RuleConfig{
				{Selector: " ", Attr: "class", Value: "x"},
			}}},
			wantErr: ErrInvalidRule,
		},
		{
			name: "empty attr",
			cfg: Config{PostProcess: PostProcessConfig{Rules: []RuleConfig{
				{Selector: "h2", Attr: "", Value: "x"},
			}}},
			wantErr: ErrInvalidRule,
		},
		{
			name: "attr with space",
			cfg: Config{PostProcess: PostProcessConfig{Rules: []RuleConfig{
				{Selector: "h2", Attr: "data x", Value: "x"},
			}}},
			wantErr: ErrInvalidRule,
		},
		{
			name: "selector does not compile",
			cfg: Config{PostProcess: PostProcessConfig{Rules: []RuleConfig{
				{Selector: "h2[", Attr: "class", Value: "x"},
			}}},
			wantErr: ErrInvalidRule,
		},
		{
			name: "value too long",
			cfg: Config{PostProcess: PostProcessConfig{Rules: []RuleConfig{
				{Selector: "h2", Attr: "class", Value: strings.Repeat("v", MaxValueLength+1)},
			}}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "too many rules",
			cfg:     Config{PostProcess: PostProcessConfig{Rules: make([]RuleConfig, MaxRules+1)}},
			wantErr: ErrInvalidRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_RuleIndexInMessage(t *testing.T) {
	cfg := Config{PostProcess: PostProcessConfig{Rules: []RuleConfig{
		{Selector: "h2", Attr: "class", Value: "ok"},
		{Selector: "", Attr: "class", Value: "bad"},
	}}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "postProcess.rules[1]") {
		t.Errorf("error %q does not name the failing rule", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, `input:
  defaultDir: "/path/to/input"
output:
  defaultDir: "/path/to/output"
workers: 3
postProcess:
  rules:
    - selector: h2
      attr: class
      value: subtitle
    - selector: h1
      attr: id
      value: top
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultDir != "/path/to/input" {
			t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "/path/to/input")
		}
		if cfg.Output.DefaultDir != "/path/to/output" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "/path/to/output")
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
		if len(cfg.PostProcess.Rules) != 2 {
			t.Fatalf("got %d rules, want 2", len(cfg.PostProcess.Rules))
		}
		want := RuleConfig{Selector: "h1", Attr: "id", Value: "top"}
		if cfg.PostProcess.Rules[1] != want {
			t.Errorf("Rules[1] = %+v, want %+v", cfg.PostProcess.Rules[1], want)
		}
	})

	t.Run("disabled post-processing", func(t *testing.T) {
		path := writeConfig(t, "postProcess:\n  disabled: true\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.PostProcess.Disabled {
			t.Error("PostProcess.Disabled = false, want true")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown name returns ErrConfigNotFound with tried paths", func(t *testing.T) {
		_, err := LoadConfig("definitely-not-a-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "definitely-not-a-config-name.yaml") {
			t.Errorf("error %q does not list tried paths", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, "workers: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, "workers: 2\nstyle: default\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, "")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid rule fails validation", func(t *testing.T) {
		path := writeConfig(t, "postProcess:\n  rules:\n    - selector: \"h2[\"\n      attr: class\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidRule) {
			t.Errorf("error = %v, want ErrInvalidRule", err)
		}
	})
}

func TestParse_InputTooLarge(t *testing.T) {
	data := []byte("workers: 1\n" + strings.Repeat("#", MaxInputSize))

	_, err := Parse(data)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestConfig_Marshal(t *testing.T) {
	cfg := &Config{
		Workers: 2,
		PostProcess: PostProcessConfig{Rules: []RuleConfig{
			{Selector: "h2", Attr: "class", Value: "subtitle"},
		}},
	}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v\n%s", err, data)
	}
	if got.Workers != 2 || len(got.PostProcess.Rules) != 1 {
		t.Errorf("decoded %+v from\n%s", got, data)
	}
}

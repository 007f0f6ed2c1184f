package wordhtml

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(*Config) {}, false},
		{"zero empty tag passes", func(c *Config) { c.EmptyTagPasses = 0 }, true},
		{"excessive nesting passes", func(c *Config) { c.NestingRepairPasses = 101 }, true},
		{"unknown output format", func(c *Config) { c.Output = "pdf" }, true},
		{"text output", func(c *Config) { c.Output = OutputText }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	t.Run("minimal only strips and scrubs", func(t *testing.T) {
		cfg := PresetMinimal()
		if !cfg.StripVendorMarkup || !cfg.ScrubAttributes {
			t.Error("expected vendor stripping and scrubbing enabled")
		}
		if cfg.PromoteStyles || cfg.RepairStructure || cfg.CorrectDocumentOrder {
			t.Error("expected transform stages disabled")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected valid preset: %v", err)
		}
	})

	t.Run("strict drops layout styles", func(t *testing.T) {
		cfg := PresetStrict()
		if cfg.KeepLayoutStyles {
			t.Error("expected layout styles dropped")
		}
		if !cfg.RepairStructure {
			t.Error("expected full pipeline enabled")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected valid preset: %v", err)
		}
	})
}

func TestConfigMerge(t *testing.T) {
	t.Run("enables stages from other", func(t *testing.T) {
		base := PresetMinimal()
		merged := base.Merge(&Config{PromoteStyles: true, RepairStructure: true})

		if !merged.PromoteStyles || !merged.RepairStructure {
			t.Error("expected stages from other enabled")
		}
		if !merged.StripVendorMarkup {
			t.Error("expected base stages retained")
		}
		if base.PromoteStyles {
			t.Error("expected base unchanged")
		}
	})

	t.Run("positive caps override", func(t *testing.T) {
		base := DefaultConfig()
		merged := base.Merge(&Config{EmptyTagPasses: 20})

		if merged.EmptyTagPasses != 20 {
			t.Errorf("expected cap 20, got %d", merged.EmptyTagPasses)
		}
		if merged.NestingRepairPasses != base.NestingRepairPasses {
			t.Errorf("expected unset cap retained, got %d", merged.NestingRepairPasses)
		}
	})

	t.Run("output format overrides when set", func(t *testing.T) {
		base := DefaultConfig()
		merged := base.Merge(&Config{Output: OutputMarkdown})
		if merged.Output != OutputMarkdown {
			t.Errorf("expected markdown output, got %s", merged.Output)
		}

		merged = base.Merge(&Config{})
		if merged.Output != OutputHTML {
			t.Errorf("expected html output retained, got %s", merged.Output)
		}
	})

	t.Run("nil other returns receiver", func(t *testing.T) {
		base := DefaultConfig()
		if merged := base.Merge(nil); merged != base {
			t.Error("expected receiver returned for nil other")
		}
	})
}

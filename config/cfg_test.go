package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.InputPath != "CBOL-template.html" {
		t.Errorf("InputPath = %q, want CBOL-template.html", doc.InputPath)
	}
	if doc.OutputPath != "output.xlsx" {
		t.Errorf("OutputPath = %q, want output.xlsx", doc.OutputPath)
	}
	if doc.FunctionName != "TradeNow" {
		t.Errorf("FunctionName = %q, want TradeNow", doc.FunctionName)
	}
	if doc.SheetName != "Sheet1" {
		t.Errorf("SheetName = %q, want Sheet1", doc.SheetName)
	}
	if !doc.PrintTable {
		t.Error("PrintTable should be enabled by default")
	}
	if doc.PlaceholderClass != "Value" || doc.CTAClass != "Button" || doc.DefaultPrefix != "Txt" {
		t.Errorf("unexpected classes: placeholder=%q cta=%q default=%q", doc.PlaceholderClass, doc.CTAClass, doc.DefaultPrefix)
	}

	want := []struct {
		class  string
		prefix string
		null   bool
	}{
		{"Title", "Hdr", false},
		{"Button", "Btn", false},
		{"Label", "Lbl", false},
		{"ListItem", "Txt", false},
		{"Value", "", true},
	}
	if len(doc.ClassPrefixes) != len(want) {
		t.Fatalf("ClassPrefixes length = %d, want %d", len(doc.ClassPrefixes), len(want))
	}
	for i, w := range want {
		got := doc.ClassPrefixes[i]
		if got.Class != w.class {
			t.Errorf("ClassPrefixes[%d].Class = %q, want %q", i, got.Class, w.class)
		}
		if w.null {
			if got.Prefix != nil {
				t.Errorf("ClassPrefixes[%d].Prefix = %q, want null", i, *got.Prefix)
			}
			continue
		}
		if got.Prefix == nil || *got.Prefix != w.prefix {
			t.Errorf("ClassPrefixes[%d].Prefix = %v, want %q", i, got.Prefix, w.prefix)
		}
	}

	m := doc.Module
	if m.Module != "eBrokerage" || m.SubModule != "eBrokerge Buy" || m.PageName != "TradeNow_Buy_100" {
		t.Errorf("unexpected module header: %+v", m)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  input_path: mock.html
  output_path: out/spec.xlsx
  function_name: Payments
  class_prefixes:
    - class: Heading
      prefix: H
    - class: Amount
      prefix: ~
  placeholder_class: Amount
  module:
    module: Cards
    sub_module: Cards Pay
    page_name: Pay_1
  print_table: false
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.InputPath != "mock.html" || doc.OutputPath != "out/spec.xlsx" {
		t.Errorf("paths = %q, %q", doc.InputPath, doc.OutputPath)
	}
	if doc.FunctionName != "Payments" {
		t.Errorf("FunctionName = %q, want Payments", doc.FunctionName)
	}
	// sequence from file replaces default one completely
	if len(doc.ClassPrefixes) != 2 {
		t.Fatalf("ClassPrefixes length = %d, want 2", len(doc.ClassPrefixes))
	}
	if doc.ClassPrefixes[1].Class != "Amount" || doc.ClassPrefixes[1].Prefix != nil {
		t.Errorf("ClassPrefixes[1] = %+v, want Amount with null prefix", doc.ClassPrefixes[1])
	}
	if doc.PlaceholderClass != "Amount" {
		t.Errorf("PlaceholderClass = %q, want Amount", doc.PlaceholderClass)
	}
	// untouched values keep defaults
	if doc.CTAClass != "Button" {
		t.Errorf("CTAClass = %q, want Button", doc.CTAClass)
	}
	if doc.SheetName != "Sheet1" {
		t.Errorf("SheetName = %q, want Sheet1", doc.SheetName)
	}
	if doc.PrintTable {
		t.Error("PrintTable should be disabled")
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ndocument:\n  function_name: X\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"wrong version", "version: 2\n"},
		{"empty function name", "version: 1\ndocument:\n  function_name: \"\"\n"},
		{"no class prefixes", "version: 1\ndocument:\n  class_prefixes: []\n"},
		{"class prefix without class", "version: 1\ndocument:\n  class_prefixes:\n    - prefix: Hdr\n"},
		{"sheet name too long", "version: 1\ndocument:\n  sheet_name: " + strings.Repeat("s", 32) + "\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "function_name: TradeNow") {
		t.Errorf("Dump() output misses function name:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if len(cfg2.Document.ClassPrefixes) != len(cfg.Document.ClassPrefixes) {
		t.Fatalf("ClassPrefixes length after dump/load = %d, want %d", len(cfg2.Document.ClassPrefixes), len(cfg.Document.ClassPrefixes))
	}
	if last := cfg2.Document.ClassPrefixes[len(cfg2.Document.ClassPrefixes)-1]; last.Prefix != nil {
		t.Errorf("null prefix did not survive dump/load: %q", *last.Prefix)
	}
}

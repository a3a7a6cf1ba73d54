package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// executeCmd runs the root command with args and returns captured stdout
// and any error.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		// flag values persist on the package-level commands between runs
		for _, c := range rootCmd.Commands() {
			c.Flags().VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paineis.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestRunValidate_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
host: 127.0.0.1
port: 9000
seed: 7
`)

	output, err := executeCmd(t, "validate", "-c", path)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}

	expectedPhrases := []string{
		"Config is valid!",
		"Address: 127.0.0.1:9000",
		"Seed:    7",
		"Pages:   3 (9 charts)",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "log_level: loud\n")

	_, err := executeCmd(t, "validate", "-c", path)
	if err == nil {
		t.Fatal("validate command expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error = %q, want to contain 'invalid config'", err.Error())
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, err := executeCmd(t, "validate", "-c", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("validate command expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %q, want to contain 'failed to read config file'", err.Error())
	}
}

func TestRunRoutes(t *testing.T) {
	output, err := executeCmd(t, "routes")
	if err != nil {
		t.Fatalf("routes command error = %v", err)
	}

	expectedPhrases := []string{
		"ROUTE",
		"/vendas",
		"vendas-barras, vendas-vs-meta, vendas-linha",
		"Operações",
		"ops-barras, ops-gauge, ops-pizza",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunRender(t *testing.T) {
	output, err := executeCmd(t, "render", "/operacoes")
	if err != nil {
		t.Fatalf("render command error = %v", err)
	}

	var resp struct {
		Route string `json:"route"`
		Title string `json:"title"`
		Slots []struct {
			ID     string `json:"id"`
			Active bool   `json:"active"`
			Figure struct {
				Kind string `json:"kind"`
			} `json:"figure"`
			Error *string `json:"error"`
		} `json:"slots"`
	}
	if err := json.Unmarshal([]byte(output), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}

	if resp.Route != "/operacoes" || resp.Title != "Operações" {
		t.Errorf("route/title = %q/%q", resp.Route, resp.Title)
	}
	active := 0
	for _, s := range resp.Slots {
		if s.Error != nil {
			t.Errorf("slot %s error = %s", s.ID, *s.Error)
		}
		if s.Active {
			active++
			continue
		}
		if s.Figure.Kind != "empty" {
			t.Errorf("inactive slot %s kind = %q, want empty", s.ID, s.Figure.Kind)
		}
	}
	if active != 3 {
		t.Errorf("active slots = %d, want 3", active)
	}
}

func TestRunRender_UnknownPathIsHome(t *testing.T) {
	output, err := executeCmd(t, "render", "/nao-existe")
	if err != nil {
		t.Fatalf("render command error = %v", err)
	}
	if !strings.Contains(output, `"route": "/"`) {
		t.Errorf("output does not resolve to home:\n%s", output)
	}
}

func TestRunRender_RequiresPath(t *testing.T) {
	if _, err := executeCmd(t, "render"); err == nil {
		t.Fatal("render without a path expected error, got nil")
	}
}

func TestVersion(t *testing.T) {
	output, err := executeCmd(t, "version")
	if err != nil {
		t.Fatalf("version command error = %v", err)
	}
	if !strings.Contains(output, "paineis dev") {
		t.Errorf("output = %q, want to contain 'paineis dev'", output)
	}
}

func TestRunServe_BadConfig(t *testing.T) {
	path := writeConfig(t, "port: 0\nlog_format: xml\n")

	_, err := executeCmd(t, "serve", "-c", path)
	if err == nil {
		t.Fatal("serve command expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("error = %q, want to contain 'failed to load config'", err.Error())
	}
}

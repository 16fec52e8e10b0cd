package rconfig

import (
	"reflect"
	"testing"
)

func TestParsePermissiveJSON(t *testing.T) {
	raw := []byte(`{
		// project overrides
		'scripts': ['./lib', './vendor'],
		'db': 'project.db',
		'temporary_variable_name': '_tmp_'
	}`)
	cfg := parse("test.rc", raw, nil)
	if cfg.DB != "project.db" {
		t.Errorf("DB = %q, want project.db", cfg.DB)
	}
	if cfg.TemporaryVariableName != "_tmp_" {
		t.Errorf("TemporaryVariableName = %q, want _tmp_", cfg.TemporaryVariableName)
	}
	if len(cfg.Scripts) != 2 || cfg.Scripts[0] != "./lib" || cfg.Scripts[1] != "./vendor" {
		t.Errorf("Scripts = %v, want [./lib ./vendor]", cfg.Scripts)
	}
}

func TestParseFallsBackToDefaultsOnGarbage(t *testing.T) {
	cfg := parse("test.rc", []byte("not json at all"), nil)
	want := Default()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v, want default %+v", cfg, want)
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	cfg := parse("test.rc", []byte(`{"db": "x.db", "bogus": 1}`), nil)
	if cfg.DB != "x.db" {
		t.Errorf("DB = %q, want x.db", cfg.DB)
	}
}

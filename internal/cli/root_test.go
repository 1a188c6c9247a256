package cli

import (
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"folders token", []string{"-folders", "-mrcs"}, []string{"folders", "-mrcs"}},
		{"packages token", []string{"-p", "express", "cors"}, []string{"packages", "express", "cors"}},
		{"version short", []string{"-v"}, []string{"version"}},
		{"version long", []string{"--version"}, []string{"version"}},
		{"help short", []string{"-h"}, []string{"help"}},
		{"plain command untouched", []string{"folders", "a"}, []string{"folders", "a"}},
		{"unknown token untouched", []string{"-bogus"}, []string{"-bogus"}},
		{"empty", nil, nil},
		{"only first token rewritten", []string{"-plugin", "-files"}, []string{"plugin", "-files"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeArgs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLegacyTokens_AllResolveToRegisteredCommands(t *testing.T) {
	for token, name := range legacyTokens {
		if name == "help" {
			continue // cobra registers help implicitly
		}
		if !knownCommand([]string{name}) {
			t.Errorf("legacy token %s maps to unregistered command %q", token, name)
		}
	}
}

func TestKnownCommand(t *testing.T) {
	if !knownCommand(nil) {
		t.Error("bare invocation should be known (shows help)")
	}
	if !knownCommand([]string{"folders"}) {
		t.Error("folders should be known")
	}
	if knownCommand([]string{"made-up"}) {
		t.Error("made-up should be unknown")
	}
}

func TestExpandFolderArgs(t *testing.T) {
	t.Run("mrcs preset order", func(t *testing.T) {
		names, ok := expandFolderArgs([]string{"-mrcs"})
		if !ok {
			t.Fatal("preset should expand")
		}
		want := []string{"models", "controllers", "routes", "services"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("names = %v, want %v", names, want)
		}
	})

	t.Run("default set", func(t *testing.T) {
		names, ok := expandFolderArgs(nil)
		if !ok || !reflect.DeepEqual(names, defaultFolders) {
			t.Errorf("names = %v, want default %v", names, defaultFolders)
		}
	})

	t.Run("literal names", func(t *testing.T) {
		names, ok := expandFolderArgs([]string{"api", "web"})
		if !ok || !reflect.DeepEqual(names, []string{"api", "web"}) {
			t.Errorf("names = %v", names)
		}
	})

	t.Run("preset plus literal", func(t *testing.T) {
		names, ok := expandFolderArgs([]string{"-mvc", "docs"})
		if !ok {
			t.Fatal("expected expansion")
		}
		want := []string{"models", "views", "controllers", "docs"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("names = %v, want %v", names, want)
		}
	})

	t.Run("unknown preset aborts", func(t *testing.T) {
		if _, ok := expandFolderArgs([]string{"-nope"}); ok {
			t.Error("unknown preset should abort")
		}
	})
}

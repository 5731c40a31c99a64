package cli

import (
	"io"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := map[string]bool{
		"format":     false,
		"preview":    false,
		"serve":      false,
		"completion": false,
	}

	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)

	c.SetLogLevel(LogDebug)

	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("log level = %v, want %v", got, LogDebug)
	}
}

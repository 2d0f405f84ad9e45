package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/announce/internal/services"
	"github.com/vvka-141/announce/pkg/announce"
)

func TestRunCmd_RejectsArgs(t *testing.T) {
	err := runCmd.Args(runCmd, []string{"extra"})
	if err == nil {
		t.Fatal("Expected error for positional args")
	}
	exitCode := announce.ExitCodeForError(err)
	if exitCode != announce.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", announce.ExitUsageError, exitCode, err)
	}
}

func TestPreviewCmd_RejectsArgs(t *testing.T) {
	if err := previewCmd.Args(previewCmd, []string{"a"}); err == nil {
		t.Fatal("Expected error for positional args")
	}
}

func TestCommands_Registered(t *testing.T) {
	want := map[string]bool{"run": false, "preview": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestRunCmd_TimeoutDefault(t *testing.T) {
	flag := runCmd.Flags().Lookup("timeout")
	if flag == nil {
		t.Fatal("timeout flag not registered")
	}
	if flag.DefValue != announce.DefaultTimeout.String() {
		t.Errorf("timeout default = %s, want %s", flag.DefValue, announce.DefaultTimeout)
	}
}

func TestPreviewItems(t *testing.T) {
	summary := &services.Summary{
		Processed: 2,
		Skipped:   1,
		Unmatched: 1,
		Posts: []services.Post{
			{Index: 2, Type: "package", Text: "hello", Result: &announce.PostResult{ID: "dry-run-1"}},
		},
	}
	items, stats := previewItems(summary)
	if len(items) != 1 || items[0].Index != 2 || items[0].Text != "hello" {
		t.Errorf("unexpected items: %+v", items)
	}
	if stats.Processed != 2 || stats.Skipped != 1 || stats.Unmatched != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestGetLogFormat(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("log-format", logFormatText, "")

	format, err := getLogFormat(cmd)
	if err != nil || format != logFormatText {
		t.Fatalf("default = %q, %v", format, err)
	}

	if err := cmd.Flags().Set("log-format", "xml"); err != nil {
		t.Fatal(err)
	}
	_, err = getLogFormat(cmd)
	if announce.ExitCodeForError(err) != announce.ExitUsageError {
		t.Errorf("Expected usage error for unknown format, got %v", err)
	}
}

//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/output"
)

// testContext returns a context carrying a default config rooted in a
// temporary directory.
func testContext(t *testing.T) context.Context {
	t.Helper()
	cfg := config.Default()
	cfg.Root = t.TempDir()
	return config.WithConfig(context.Background(), &cfg)
}

// executeCommand runs cmd with args and returns what it printed.
func executeCommand(ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	ctx = output.WithPrinter(ctx, &buf)

	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetContext(ctx)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	return buf.String(), err
}

// rootOf returns the worklog root carried by ctx.
func rootOf(ctx context.Context) string {
	return config.FromContext(ctx).Root
}

// editInbox applies replacements to the inbox file under ctx's root.
func editInbox(t *testing.T, ctx context.Context, pairs ...string) {
	t.Helper()
	path := filepath.Join(rootOf(ctx), config.DefaultInbox)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read inbox: %v", err)
	}
	text := strings.NewReplacer(pairs...).Replace(string(data))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write inbox: %v", err)
	}
}

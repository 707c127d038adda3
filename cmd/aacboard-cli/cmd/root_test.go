package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testBoard = `img/food/plate.png food
>img/food/fries.png french fries
>img/food/watermelon.png watermelon
img/clothing/hanger.png clothing
>img/clothing/shirt.png collared shirt
`

func writeBoard(t *testing.T) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("AACBOARD_CONFIG", "")

	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(testBoard), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	teardown()
	return out.String(), err
}

func TestCLI_SelectRemembersCategory(t *testing.T) {
	board := writeBoard(t)
	state := filepath.Join(t.TempDir(), "state.db")

	out, err := run(t, "--board", board, "--state", state, "select", "img/food/plate.png")
	if err != nil {
		t.Fatalf("select category failed: %v", err)
	}
	if !strings.Contains(out, "Opened food") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "--board", board, "--state", state, "current")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if strings.TrimSpace(out) != "img/food/plate.png food" {
		t.Errorf("category should be remembered, got %q", out)
	}

	out, err = run(t, "--board", board, "--state", state, "select", "img/food/fries.png")
	if err != nil {
		t.Fatalf("select item failed: %v", err)
	}
	if strings.TrimSpace(out) != "french fries" {
		t.Errorf("expected spoken text, got %q", out)
	}

	out, err = run(t, "--board", board, "--state", state, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "french fries") {
		t.Errorf("history should list the spoken item, got %q", out)
	}
}

func TestCLI_ListAtHome(t *testing.T) {
	board := writeBoard(t)

	out, err := run(t, "--board", board, "--no-state", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := "img/food/plate.png food\nimg/clothing/hanger.png clothing\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestCLI_AddSavesBoard(t *testing.T) {
	board := writeBoard(t)

	if _, err := run(t, "--board", board, "--no-state", "add", "img/toys/box.png", "toys"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	data, err := os.ReadFile(board)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "img/toys/box.png toys\n") {
		t.Errorf("new category should be saved last:\n%s", data)
	}

	_, err = run(t, "--board", board, "--no-state", "add", "img/food/plate.png", "meals")
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Errorf("expected overwrite refusal, got %v", err)
	}
}

func TestCLI_MissingBoardStartsEmpty(t *testing.T) {
	writeBoard(t)
	board := filepath.Join(t.TempDir(), "new", "board.txt")

	out, err := run(t, "--board", board, "--no-state", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty listing, got %q", out)
	}
}

func TestCLI_Export(t *testing.T) {
	board := writeBoard(t)

	out, err := run(t, "--board", board, "--no-state", "export")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if out != testBoard {
		t.Errorf("export should match the canonical file:\n%s", out)
	}
}

// resetFlags puts every flag back to its default between runs of the
// shared root command
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

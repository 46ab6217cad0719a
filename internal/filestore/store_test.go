package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-petr/private-bank/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSaveList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := New(filepath.Join(t.TempDir(), "nested", "root"))
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "Bob", []byte("[]")))
	require.NoError(t, s.Save(ctx, "Alice", []byte("[1]")))
	require.NoError(t, s.Save(ctx, "Alice", []byte("[2]")))
	require.NoError(t, s.Save(ctx, "a/b c%", []byte("[3]")))

	// Unrelated files and leftovers of an interrupted write are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), ".konto-123.tmp"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(s.Root(), "Konto dir.json"), 0o755))

	got, err := s.List(ctx)
	require.NoError(t, err)

	want := []domain.LedgerRecord{
		{Account: "Alice", Data: []byte("[2]")},
		{Account: "Bob", Data: []byte("[]")},
		{Account: "a/b c%", Data: []byte("[3]")},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("s.List() mismatch (-want +got):\n%s", diff)
	}

	if _, err := os.Stat(filepath.Join(s.Root(), "Konto Alice.json")); err != nil {
		t.Errorf(`os.Stat("Konto Alice.json") returned error: %v`, err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := New(t.TempDir())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Save(ctx, "Alice", []byte("[]")))
	}

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)

	if len(entries) != 1 {
		t.Errorf("len(os.ReadDir(root)) = %d, want 1", len(entries))
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "Alice", []byte("[]")))
	require.NoError(t, s.Delete(ctx, "Alice"))
	require.NoError(t, s.Delete(ctx, "Alice"))

	got, err := s.List(ctx)
	require.NoError(t, err)

	if len(got) != 0 {
		t.Errorf("s.List() = %v, want empty", got)
	}
}

func TestAccountOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		base      string
		want      string
		wantOK    bool
		wantError error
	}{
		{base: "Konto Alice.json", want: "Alice", wantOK: true},
		{base: "Konto a%2Fb.json", want: "a/b", wantOK: true},
		{base: "Konto Alice%20Smith.json", want: "Alice Smith", wantOK: true},
		{base: "Konto .json", want: "", wantOK: true},
		{base: "Konto %zz.json", wantOK: true, wantError: ErrBadFileName},
		{base: "Konto A%6Cice.json", wantOK: true, wantError: ErrBadFileName},
		{base: "Konto Alice Smith.json", wantOK: true, wantError: ErrBadFileName},
		{base: "Alice.json"},
		{base: "Konto Alice.json.tmp"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.base, func(t *testing.T) {
			t.Parallel()

			got, ok, err := accountOf(tc.base)
			if !errors.Is(err, tc.wantError) {
				t.Fatalf("accountOf(%q) returned error %v, want %v", tc.base, err, tc.wantError)
			}

			if got != tc.want || ok != tc.wantOK {
				t.Errorf("accountOf(%q) = %q, %v, want %q, %v", tc.base, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestListRejectsNonCanonicalNames(t *testing.T) {
	t.Parallel()

	testCases := []string{
		"Konto A%6Cice.json",
		"Konto Alice Smith.json",
		"Konto %zz.json",
	}

	for i := range testCases {
		base := testCases[i]

		t.Run(base, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()

			s, err := New(t.TempDir())
			require.NoError(t, err)

			require.NoError(t, s.Save(ctx, "Alice", []byte("[]")))
			require.NoError(t, os.WriteFile(filepath.Join(s.Root(), base), []byte("[]"), 0o644))

			got, err := s.List(ctx)
			if !errors.Is(err, ErrBadFileName) {
				t.Fatalf("s.List() returned error %v, want %v", err, ErrBadFileName)
			}

			if got != nil {
				t.Errorf("s.List() = %v, want nil", got)
			}
		})
	}
}

func TestDeleteRemovesLoadedFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "Alice Smith", []byte("[]")))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, s.Delete(ctx, records[0].Account))

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)

	if len(entries) != 0 {
		t.Errorf("len(os.ReadDir(root)) = %d after delete, want 0", len(entries))
	}
}

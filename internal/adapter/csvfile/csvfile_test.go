package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"weighttrend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLoadSamples_MissingFileIsEmpty(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "weights.csv"))

	got, err := repo.LoadSamples(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "weights.csv")
	repo := New(path)
	in := domain.Series{
		{Day: day("2024-01-01"), Weight: 90.1},
		{Day: day("2024-01-02"), Weight: 89.95},
		{Day: day("2024-01-09"), Weight: 89},
	}

	require.NoError(t, repo.SaveSamples(context.Background(), in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,weight\n2024-01-01,90.1\n2024-01-02,89.95\n2024-01-09,89\n", string(raw))

	out, err := repo.LoadSamples(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Sample(in), out)
}

func TestSaveSamples_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := New(filepath.Join(dir, "weights.csv"))

	require.NoError(t, repo.SaveSamples(context.Background(), domain.Series{{Day: day("2024-01-01"), Weight: 80}}))
	require.NoError(t, repo.SaveSamples(context.Background(), domain.Series{{Day: day("2024-01-02"), Weight: 81}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "weights.csv", entries[0].Name())
}

func TestLoadSamples_HeaderOrderAndDuplicatesKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.csv")
	require.NoError(t, os.WriteFile(path, []byte("weight,date\n80.5,2024-02-01\n81,2024-01-31\n79.5,2024-02-01\n"), 0o644))

	got, err := New(path).LoadSamples(context.Background())
	require.NoError(t, err)
	// Ordering and deduplication happen in the store, not here.
	assert.Equal(t, []domain.Sample{
		{Day: day("2024-02-01"), Weight: 80.5},
		{Day: day("2024-01-31"), Weight: 81},
		{Day: day("2024-02-01"), Weight: 79.5},
	}, got)
}

func TestLoadSamples_Malformed(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"no header":   {body: "2024-01-01,80\n", want: "header"},
		"bad date":    {body: "date,weight\n2024-13-01,80\n", want: "line 2"},
		"bad weight":  {body: "date,weight\n2024-01-01,80\n2024-01-02,heavy\n", want: "line 3"},
		"zero weight": {body: "date,weight\n2024-01-01,0\n", want: "line 2"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "weights.csv")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))

			_, err := New(path).LoadSamples(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadSamples_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := New(path).LoadSamples(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSamples_SkipsIncompleteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.csv")
	body := "date,weight\n2024-01-01,90\n2024-01-02,\n,88.5\n2024-01-05\n2024-01-08,89\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := New(path).LoadSamples(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Sample{
		{Day: day("2024-01-01"), Weight: 90},
		{Day: day("2024-01-08"), Weight: 89},
	}, got)
}

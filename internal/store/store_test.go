package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gutlog-api/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "gutlog.json"))
}

func fixedClock(date string) func() time.Time {
	ts, err := time.Parse(model.DateKey, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func sampleDoc() model.Document {
	return model.Document{
		"2024-01-15": {
			SymptomDescription: "cramps after breakfast",
			SymptomSeverity:    model.Int(8),
			SleepHours:         model.Float(6),
			StressLevel:        model.Int(7),
			Meals:              "eggs, toast",
		},
		"2024-01-16": {
			SymptomDescription: "calm day",
			SymptomSeverity:    model.Int(3),
			SleepHours:         model.Float(8),
			StressLevel:        model.Int(2),
			Meals:              "salad",
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := &Store{path: filepath.Join(t.TempDir(), "nope", "gutlog.json"), nowFn: time.Now}
	doc := s.Load()
	require.NotNil(t, doc)
	require.Empty(t, doc)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := sampleDoc()

	require.NoError(t, s.Save(in))
	out := s.Load()
	require.Equal(t, in, out)
}

func TestNewCreatesBackingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "gutlog.json")
	New(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))
}

func TestNewBacksUpCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gutlog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New(path)
	require.Empty(t, s.Load())

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	require.Equal(t, "{not json", string(backup))
}

func TestLoadCorruptFileDegradesToEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("]["), 0o644))
	require.Empty(t, s.Load())
}

func TestSaveEntryOverwrites(t *testing.T) {
	s := newTestStore(t)

	first := model.DailyEntry{SymptomDescription: "first", SymptomSeverity: model.Int(5)}
	require.NoError(t, s.SaveEntry("2024-01-15", first))

	second := model.DailyEntry{SymptomDescription: "second", SymptomSeverity: model.Int(7)}
	require.NoError(t, s.SaveEntry("2024-01-15", second))

	got, ok := s.Entry("2024-01-15")
	require.True(t, ok)
	require.Equal(t, "second", got.SymptomDescription)
	require.Len(t, s.Load(), 1)
}

func TestEntryAbsent(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.Entry("1999-12-31")
	require.False(t, ok)
}

func TestDateRange(t *testing.T) {
	s := newTestStore(t)
	s.nowFn = fixedClock("2024-01-17")

	doc := sampleDoc()
	doc["2024-01-10"] = model.DailyEntry{SymptomDescription: "old entry"}
	require.NoError(t, s.Save(doc))

	t.Run("window covers recent entries only", func(t *testing.T) {
		got := s.DateRange(3)
		require.Len(t, got, 1)
		require.Contains(t, got, "2024-01-16")
	})

	t.Run("wider window picks up both", func(t *testing.T) {
		got := s.DateRange(7)
		require.Len(t, got, 2)
		require.Contains(t, got, "2024-01-15")
		require.Contains(t, got, "2024-01-16")
		require.NotContains(t, got, "2024-01-10")
	})

	t.Run("gap days are absent not zero-filled", func(t *testing.T) {
		got := s.DateRange(7)
		require.NotContains(t, got, "2024-01-17")
	})
}

func TestStatistics(t *testing.T) {
	s := newTestStore(t)

	t.Run("empty document has no averages", func(t *testing.T) {
		sum := s.Statistics()
		require.Zero(t, sum.Entries)
		require.Nil(t, sum.AvgSeverity)
		require.Nil(t, sum.AvgSleep)
		require.Nil(t, sum.AvgStress)
	})

	t.Run("means over the sample document", func(t *testing.T) {
		require.NoError(t, s.Save(sampleDoc()))
		sum := s.Statistics()
		require.Equal(t, 2, sum.Entries)
		require.InDelta(t, 5.5, *sum.AvgSeverity, 1e-9)
		require.InDelta(t, 7.0, *sum.AvgSleep, 1e-9)
		require.InDelta(t, 4.5, *sum.AvgStress, 1e-9)
	})
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleDoc()))

	t.Run("removes existing entry", func(t *testing.T) {
		require.NoError(t, s.Delete("2024-01-15"))
		_, ok := s.Entry("2024-01-15")
		require.False(t, ok)
	})

	t.Run("absent key is a successful no-op", func(t *testing.T) {
		before := s.Load()
		require.NoError(t, s.Delete("2020-05-05"))
		require.Equal(t, before, s.Load())
	})
}

func TestSaveUnwritablePathFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	s := &Store{path: filepath.Join(dir, "gutlog.json"), nowFn: time.Now}
	require.Error(t, s.Save(sampleDoc()))
}

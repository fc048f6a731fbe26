package locale_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-go/pkg/locale"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty falls back to default", "", "tr"},
		{"exact supported code", "en", "en"},
		{"default code", "tr", "tr"},
		{"uppercase legacy value", "TR", "tr"},
		{"region subtag collapses", "en-US", "en"},
		{"turkish with region", "tr-TR", "tr"},
		{"unsupported language falls back", "fr", "tr"},
		{"garbage falls back", "not a language!", "tr"},
		{"whitespace trims", "  en  ", "en"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, locale.Normalize(tc.in))
		})
	}
}

func TestRecognized(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"supported code", "tr", true},
		{"other supported code", "en", true},
		{"region variant of supported", "tr-TR", true},
		{"region variant of other supported", "en-US", true},
		{"uppercase legacy value", "TR", true},
		{"unrelated language", "fr", false},
		{"garbage", "not a language!", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, locale.Recognized(tc.in))
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, locale.IsSupported("tr"))
	assert.True(t, locale.IsSupported("en"))
	assert.False(t, locale.IsSupported("en-US"))
	assert.False(t, locale.IsSupported(""))
}

func TestPrefStore(t *testing.T) {
	t.Run("missing file loads the default", func(t *testing.T) {
		store := locale.NewPrefStore(filepath.Join(t.TempDir(), "locale"))
		assert.Equal(t, "tr", store.Load())
	})

	t.Run("save then load roundtrips", func(t *testing.T) {
		store := locale.NewPrefStore(filepath.Join(t.TempDir(), "locale"))
		require.NoError(t, store.Save("en"))
		assert.Equal(t, "en", store.Load())
	})

	t.Run("save creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "locale")
		store := locale.NewPrefStore(path)
		require.NoError(t, store.Save("en"))
		assert.Equal(t, "en", store.Load())
	})

	t.Run("save normalizes what it writes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locale")
		store := locale.NewPrefStore(path)
		require.NoError(t, store.Save("EN-us"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "en\n", string(data))
	})

	t.Run("corrupt file loads the default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locale")
		require.NoError(t, os.WriteFile(path, []byte("zz-invalid"), 0o600))

		store := locale.NewPrefStore(path)
		assert.Equal(t, "tr", store.Load())
	})
}

func TestLoadCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"tr.yml": {Data: []byte("nav:\n  appointments: Randevular\n  doctors: Doktorlar\ngreeting: Merhaba\n")},
		"en.yml": {Data: []byte("nav:\n  appointments: Appointments\n")},
	}

	catalog, err := locale.LoadCatalog(fsys)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tr", "en"}, catalog.Languages())

	t.Run("nested keys flatten", func(t *testing.T) {
		assert.Equal(t, "Randevular", catalog.T("tr", "nav.appointments"))
		assert.Equal(t, "Appointments", catalog.T("en", "nav.appointments"))
	})

	t.Run("missing key falls back to default language", func(t *testing.T) {
		assert.Equal(t, "Doktorlar", catalog.T("en", "nav.doctors"))
		assert.Equal(t, "Merhaba", catalog.T("en", "greeting"))
	})

	t.Run("key missing everywhere resolves to itself", func(t *testing.T) {
		assert.Equal(t, "nav.billing", catalog.T("tr", "nav.billing"))
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		assert.Equal(t, "Merhaba", catalog.T("de", "greeting"))
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		_, err := locale.LoadCatalog(fstest.MapFS{
			"tr.yml": {Data: []byte("nav: [unterminated")},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrFailedToParseCatalog)
	})

	t.Run("empty directory fails", func(t *testing.T) {
		_, err := locale.LoadCatalog(fstest.MapFS{})
		assert.ErrorIs(t, err, locale.ErrEmptyCatalog)
	})
}

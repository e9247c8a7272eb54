package reldate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const spanishLexiconYAML = `locale: es
name: español
first_day: monday
phrases:
  - phrase: hoy
    expr: {kind: today}
  - phrase: mañana
    expr: {kind: tomorrow}
  - phrase: ayer
    expr: {kind: yesterday}
templates:
  - pattern: en {n} dias
    expr: {kind: offset_days}
  - pattern: hace {n} dias
    expr: {kind: offset_days, sign: -1}
  - pattern: el proximo {weekday}
    expr: {kind: weekday_next}
numbers:
  uno: 1
  dos: 2
  tres: 3
weekdays:
  lunes: monday
  martes: tuesday
  miercoles: wednesday
  jueves: thursday
  viernes: friday
  sabado: saturday
  domingo: sunday
`

func setupRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "es.yaml"), []byte(spanishLexiconYAML), 0o644)

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg, dir
}

func TestRegistryBuiltinsAlwaysPresent(t *testing.T) {
	reg := NewRegistry("")
	for _, locale := range []string{"pt-BR", "en"} {
		if _, err := reg.Lexicon(locale); err != nil {
			t.Errorf("Lexicon(%q): %v", locale, err)
		}
	}
	if reg.LocaleCount() != 2 {
		t.Errorf("LocaleCount = %d, want 2", reg.LocaleCount())
	}
	if _, err := reg.Lexicon("es"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Errorf("Lexicon(es) err = %v, want ErrUnsupportedLocale", err)
	}
}

func TestRegistryLoadsLexiconFiles(t *testing.T) {
	reg, _ := setupRegistry(t)

	if reg.LocaleCount() != 3 {
		t.Fatalf("LocaleCount = %d, want 3", reg.LocaleCount())
	}

	e, err := reg.Parse("mañana", "es")
	if err != nil {
		t.Fatalf("Parse(mañana, es): %v", err)
	}
	if e != Tomorrow() {
		t.Errorf("Parse(mañana, es) = %v, want tomorrow", e)
	}
	if e, err := reg.Parse("hace dos dias", "es"); err != nil || e != OffsetDays(-2) {
		t.Errorf("Parse(hace dos dias) = %v, %v; want offset_days(-2)", e, err)
	}
	if e, err := reg.Parse("el proximo viernes", "es"); err != nil || e != WeekdayNext(time.Friday) {
		t.Errorf("Parse(el proximo viernes) = %v, %v", e, err)
	}
}

func TestRegistryReloadPicksUpNewFiles(t *testing.T) {
	reg, dir := setupRegistry(t)

	const frYAML = `locale: fr
phrases:
  - phrase: aujourd'hui
    expr: {kind: today}
  - phrase: demain
    expr: {kind: tomorrow}
weekdays:
  lundi: monday
`
	os.WriteFile(filepath.Join(dir, "fr.yml"), []byte(frYAML), 0o644)

	if _, err := reg.Parse("demain", "fr"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("fr available before reload, err = %v", err)
	}
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if e, err := reg.Parse("demain", "fr"); err != nil || e != Tomorrow() {
		t.Errorf("Parse(demain, fr) = %v, %v", e, err)
	}
	if reg.LocaleCount() != 4 {
		t.Errorf("LocaleCount = %d, want 4", reg.LocaleCount())
	}
}

func TestRegistryFileShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	const override = `locale: en
name: English (minimal)
phrases:
  - phrase: today
    expr: {kind: today}
`
	os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(override), 0o644)

	reg := NewRegistry(dir)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// The file replaces the built-in wholesale.
	if _, err := reg.Parse("tomorrow", "en"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("shadowed lexicon still knows built-in phrases, err = %v", err)
	}
	for _, info := range reg.Locales() {
		if info.Locale == "en" {
			if info.Builtin {
				t.Error("shadowing lexicon still flagged builtin")
			}
			if info.Name != "English (minimal)" {
				t.Errorf("Name = %q", info.Name)
			}
		}
	}
}

func TestRegistryBadFileKeepsPreviousSet(t *testing.T) {
	reg, dir := setupRegistry(t)

	bad := `locale: xx
templates:
  - pattern: en {count} dias
    expr: {kind: offset_days}
`
	os.WriteFile(filepath.Join(dir, "xx.yaml"), []byte(bad), 0o644)

	if err := reg.Reload(); err == nil {
		t.Fatal("Reload of a bad lexicon file succeeded, want error")
	}
	// Previous set intact.
	if reg.LocaleCount() != 3 {
		t.Errorf("LocaleCount = %d, want 3 after failed reload", reg.LocaleCount())
	}
	if _, err := reg.Parse("hoy", "es"); err != nil {
		t.Errorf("es lost after failed reload: %v", err)
	}
}

func TestRegistryMissingDirIsBuiltinsOnly(t *testing.T) {
	reg := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := reg.Load(); err != nil {
		t.Fatalf("Load with missing dir: %v", err)
	}
	if reg.LocaleCount() != 2 {
		t.Errorf("LocaleCount = %d, want 2", reg.LocaleCount())
	}
}

func TestRegistryLocalesMetadata(t *testing.T) {
	reg, _ := setupRegistry(t)

	infos := reg.Locales()
	if len(infos) != 3 {
		t.Fatalf("Locales = %d entries, want 3", len(infos))
	}
	// Sorted by locale identifier.
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Locale >= infos[i].Locale {
			t.Errorf("Locales not sorted: %q before %q", infos[i-1].Locale, infos[i].Locale)
		}
	}
	for _, info := range infos {
		switch info.Locale {
		case "en", "pt-BR":
			if !info.Builtin {
				t.Errorf("%s: Builtin = false", info.Locale)
			}
		case "es":
			if info.Builtin {
				t.Error("es: Builtin = true")
			}
			if info.Name != "español" || info.FirstDay != "monday" {
				t.Errorf("es metadata = %+v", info)
			}
			if info.Phrases != 3 || info.Templates != 3 {
				t.Errorf("es counts = %d phrases, %d templates", info.Phrases, info.Templates)
			}
		}
	}

	if reg.TotalEntries() == 0 {
		t.Error("TotalEntries = 0")
	}
}

func TestLoadLexiconFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLexiconFile(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("missing file: want error")
	}

	path := filepath.Join(dir, "broken.yaml")
	os.WriteFile(path, []byte("locale: [not, a, string]"), 0o644)
	if _, err := LoadLexiconFile(path); err == nil {
		t.Error("malformed yaml: want error")
	}
}

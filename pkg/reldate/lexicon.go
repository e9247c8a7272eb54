// CLAUDE:SUMMARY Lexicon authoring spec (phrases, token templates, vocabularies) and its compiled, immutable form.
package reldate

import (
	"fmt"
	"strings"
	"time"
)

// slotKind identifies the variable positions a template can declare.
type slotKind int

const (
	slotNone slotKind = iota
	slotNumber
	slotWeekday
	slotOrdinal
	slotMonth
)

func slotName(s slotKind) string {
	switch s {
	case slotNumber:
		return "{n}"
	case slotWeekday:
		return "{weekday}"
	case slotOrdinal:
		return "{ordinal}"
	case slotMonth:
		return "{month}"
	}
	return "{?}"
}

var slotsByName = map[string]slotKind{
	"{n}":       slotNumber,
	"{weekday}": slotWeekday,
	"{ordinal}": slotOrdinal,
	"{month}":   slotMonth,
}

// segment is one token position of a compiled template: either a literal
// normalized token or a slot.
type segment struct {
	token string
	slot  slotKind
}

// ExprSpec is the authoring form of an expression constructor. Payload
// fields are either literal here or captured by the matching template slot,
// never both. Sign multiplies a captured {n} (0 means +1).
type ExprSpec struct {
	Kind    string `yaml:"kind"`
	N       int    `yaml:"n,omitempty"`
	Sign    int    `yaml:"sign,omitempty"`
	Weekday string `yaml:"weekday,omitempty"`
	Ordinal int    `yaml:"ordinal,omitempty"`
	Month   string `yaml:"month,omitempty"`
}

// PhraseSpec maps an exact phrase to an expression ("hoje" -> today).
type PhraseSpec struct {
	Phrase string   `yaml:"phrase"`
	Expr   ExprSpec `yaml:"expr"`
}

// TemplateSpec maps a token pattern with slots to an expression
// ("em {n} dias" -> offset_days, sign +1).
type TemplateSpec struct {
	Pattern string   `yaml:"pattern"`
	Expr    ExprSpec `yaml:"expr"`
}

// LexiconSpec is the authoring form of a locale lexicon. The Go built-ins
// and YAML lexicon files share it and compile through the same path.
// Vocabulary keys may span several tokens ("vinte e um", "segunda-feira");
// weekday and month values are canonical lowercase English names.
type LexiconSpec struct {
	Locale    string            `yaml:"locale"`
	Name      string            `yaml:"name,omitempty"`
	FirstDay  string            `yaml:"first_day,omitempty"`
	Phrases   []PhraseSpec      `yaml:"phrases,omitempty"`
	Templates []TemplateSpec    `yaml:"templates,omitempty"`
	Numbers   map[string]int    `yaml:"numbers,omitempty"`
	Ordinals  map[string]int    `yaml:"ordinals,omitempty"`
	Weekdays  map[string]string `yaml:"weekdays,omitempty"`
	Months    map[string]string `yaml:"months,omitempty"`
}

// captures holds the values template slots matched, plus the raw token an
// {n} slot consumed when it was not a known number word (validated after the
// skeleton commits).
type captures struct {
	n          int
	weekday    time.Weekday
	ordinal    int
	month      time.Month
	hasN       bool
	hasWeekday bool
	hasOrdinal bool
	hasMonth   bool
	rawNumeral string
}

// buildSpec is a compiled ExprSpec: literals resolved, sign normalized.
type buildSpec struct {
	kind    Kind
	n       int
	sign    int
	weekday time.Weekday
	ordinal int
	month   time.Month
}

// apply builds the final expression from the compiled literals plus whatever
// the slots captured.
func (b buildSpec) apply(c captures) Expr {
	e := Expr{Kind: b.kind, N: b.n, Weekday: b.weekday, Ordinal: b.ordinal, Month: b.month}
	if c.hasN {
		e.N = b.sign * c.n
	}
	if c.hasWeekday {
		e.Weekday = c.weekday
	}
	if c.hasOrdinal {
		e.Ordinal = c.ordinal
	}
	if c.hasMonth {
		e.Month = c.month
	}
	return e
}

// template is one compiled token pattern.
type template struct {
	pattern string
	segs    []segment
	build   buildSpec
}

// vocab holds the slot vocabularies, keyed by normalized space-joined token
// runs, with the longest run length per slot for bounded lookahead.
type vocab struct {
	numbers  map[string]int
	ordinals map[string]int
	weekdays map[string]time.Weekday
	months   map[string]time.Month
	maxRun   [slotMonth + 1]int
}

func (v *vocab) note(slot slotKind, key string) {
	if n := len(strings.Fields(key)); n > v.maxRun[slot] {
		v.maxRun[slot] = n
	}
}

func (v *vocab) compile(spec *LexiconSpec) error {
	v.numbers = make(map[string]int, len(spec.Numbers))
	for word, val := range spec.Numbers {
		key := Normalize(word)
		if key == "" {
			return fmt.Errorf("empty number word")
		}
		if val < 1 {
			return fmt.Errorf("number word %q: value must be >= 1, got %d", word, val)
		}
		if _, dup := v.numbers[key]; dup {
			return fmt.Errorf("duplicate number word %q", key)
		}
		v.numbers[key] = val
		v.note(slotNumber, key)
	}

	v.ordinals = make(map[string]int, len(spec.Ordinals))
	for word, val := range spec.Ordinals {
		key := Normalize(word)
		if key == "" {
			return fmt.Errorf("empty ordinal word")
		}
		if val < 1 || val > 5 {
			return fmt.Errorf("ordinal word %q: value must be 1-5, got %d", word, val)
		}
		if _, dup := v.ordinals[key]; dup {
			return fmt.Errorf("duplicate ordinal word %q", key)
		}
		v.ordinals[key] = val
		v.note(slotOrdinal, key)
	}

	v.weekdays = make(map[string]time.Weekday, len(spec.Weekdays))
	for word, name := range spec.Weekdays {
		key := Normalize(word)
		if key == "" {
			return fmt.Errorf("empty weekday word")
		}
		wd, ok := parseWeekdayName(name)
		if !ok {
			return fmt.Errorf("weekday word %q: unknown canonical name %q", word, name)
		}
		if _, dup := v.weekdays[key]; dup {
			return fmt.Errorf("duplicate weekday word %q", key)
		}
		v.weekdays[key] = wd
		v.note(slotWeekday, key)
	}

	v.months = make(map[string]time.Month, len(spec.Months))
	for word, name := range spec.Months {
		key := Normalize(word)
		if key == "" {
			return fmt.Errorf("empty month word")
		}
		mo, ok := parseMonthName(name)
		if !ok {
			return fmt.Errorf("month word %q: unknown canonical name %q", word, name)
		}
		if _, dup := v.months[key]; dup {
			return fmt.Errorf("duplicate month word %q", key)
		}
		v.months[key] = mo
		v.note(slotMonth, key)
	}
	return nil
}

// matchRun matches the longest vocabulary run for the slot starting at
// tokens[i]. On success it records the captured value and returns the number
// of tokens consumed. Longest-first, no backtracking.
func (v *vocab) matchRun(slot slotKind, tokens []string, i int, caps *captures) (int, bool) {
	max := v.maxRun[slot]
	if rest := len(tokens) - i; max > rest {
		max = rest
	}
	for n := max; n >= 1; n-- {
		key := strings.Join(tokens[i:i+n], " ")
		switch slot {
		case slotNumber:
			if val, ok := v.numbers[key]; ok {
				caps.n, caps.hasN = val, true
				return n, true
			}
		case slotWeekday:
			if val, ok := v.weekdays[key]; ok {
				caps.weekday, caps.hasWeekday = val, true
				return n, true
			}
		case slotOrdinal:
			if val, ok := v.ordinals[key]; ok {
				caps.ordinal, caps.hasOrdinal = val, true
				return n, true
			}
		case slotMonth:
			if val, ok := v.months[key]; ok {
				caps.month, caps.hasMonth = val, true
				return n, true
			}
		}
	}
	return 0, false
}

// Lexicon is a compiled locale table. Immutable after Compile; safe for
// concurrent use.
type Lexicon struct {
	locale       string
	name         string
	firstDay     time.Weekday
	phrases      map[string]Expr
	maxPhraseRun int
	templates    []template
	vocab        vocab
}

// Locale returns the locale identifier, e.g. "pt-BR".
func (lx *Lexicon) Locale() string { return lx.locale }

// Name returns the human-readable locale name.
func (lx *Lexicon) Name() string { return lx.name }

// FirstDay returns the locale's first-day-of-week convention.
func (lx *Lexicon) FirstDay() time.Weekday { return lx.firstDay }

// Compile validates a lexicon spec and builds its immutable compiled form.
// Authoring rules enforced here, not at match time: templates declare at
// most one slot of each kind and at least one slot (slot-free entries belong
// in phrases), multi-slot templates carry at least one fixed token, every
// slot is consumed by the expression kind, and fixed-token skeletons are
// pairwise disjoint so the first skeleton match is the only possible one.
func Compile(spec *LexiconSpec) (*Lexicon, error) {
	if spec.Locale == "" {
		return nil, fmt.Errorf("lexicon: missing locale")
	}
	name := spec.Name
	if name == "" {
		name = spec.Locale
	}
	firstDay := time.Monday
	if spec.FirstDay != "" {
		wd, ok := parseWeekdayName(spec.FirstDay)
		if !ok {
			return nil, fmt.Errorf("lexicon %s: unknown first_day %q", spec.Locale, spec.FirstDay)
		}
		firstDay = wd
	}

	lx := &Lexicon{
		locale:   spec.Locale,
		name:     name,
		firstDay: firstDay,
		phrases:  make(map[string]Expr, len(spec.Phrases)),
	}
	if err := lx.vocab.compile(spec); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", spec.Locale, err)
	}

	for _, p := range spec.Phrases {
		key := Normalize(p.Phrase)
		if key == "" {
			return nil, fmt.Errorf("lexicon %s: empty phrase", spec.Locale)
		}
		if _, dup := lx.phrases[key]; dup {
			return nil, fmt.Errorf("lexicon %s: duplicate phrase %q", spec.Locale, key)
		}
		b, err := compileExpr(p.Expr, nil)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: phrase %q: %w", spec.Locale, p.Phrase, err)
		}
		lx.phrases[key] = b.apply(captures{})
		if n := len(strings.Fields(key)); n > lx.maxPhraseRun {
			lx.maxPhraseRun = n
		}
	}

	skeletons := make(map[string]string, len(spec.Templates))
	for _, t := range spec.Templates {
		segs, err := parseSegments(t.Pattern)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: template %q: %w", spec.Locale, t.Pattern, err)
		}
		b, err := compileExpr(t.Expr, segs)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: template %q: %w", spec.Locale, t.Pattern, err)
		}
		sk := skeletonOf(segs)
		if prev, dup := skeletons[sk]; dup {
			return nil, fmt.Errorf("lexicon %s: templates %q and %q share the skeleton %q", spec.Locale, prev, t.Pattern, sk)
		}
		skeletons[sk] = t.Pattern
		lx.templates = append(lx.templates, template{pattern: t.Pattern, segs: segs, build: b})
	}
	return lx, nil
}

// mustCompile is for the built-in lexicon specs, which are covered by tests.
func mustCompile(spec *LexiconSpec) *Lexicon {
	lx, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return lx
}

func parseSegments(pattern string) ([]segment, error) {
	tokens := tokenize(pattern)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}
	segs := make([]segment, 0, len(tokens))
	seen := make(map[slotKind]bool)
	fixed := 0
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "{") {
			slot, ok := slotsByName[tok]
			if !ok {
				return nil, fmt.Errorf("unknown slot %q", tok)
			}
			if seen[slot] {
				return nil, fmt.Errorf("duplicate slot %q", tok)
			}
			seen[slot] = true
			segs = append(segs, segment{slot: slot})
			continue
		}
		fixed++
		segs = append(segs, segment{token: tok})
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no slots; use a phrase entry instead")
	}
	if fixed == 0 && len(seen) > 1 {
		return nil, fmt.Errorf("multi-slot pattern needs at least one fixed token")
	}
	return segs, nil
}

// skeletonOf renders the fixed-token skeleton used for the disjointness
// check: slots are kind-erased and adjacent slots collapse into one marker,
// since slot runs have flexible token length at match time.
func skeletonOf(segs []segment) string {
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		if seg.slot != slotNone {
			if len(parts) > 0 && parts[len(parts)-1] == "*" {
				continue
			}
			parts = append(parts, "*")
			continue
		}
		parts = append(parts, seg.token)
	}
	return strings.Join(parts, " ")
}

func compileExpr(spec ExprSpec, segs []segment) (buildSpec, error) {
	kind, ok := kindValues[spec.Kind]
	if !ok {
		return buildSpec{}, fmt.Errorf("unknown expression kind %q", spec.Kind)
	}

	slots := make(map[slotKind]bool)
	for _, seg := range segs {
		if seg.slot != slotNone {
			slots[seg.slot] = true
		}
	}

	b := buildSpec{kind: kind, sign: 1}
	switch spec.Sign {
	case 0, 1:
	case -1:
		b.sign = -1
	default:
		return buildSpec{}, fmt.Errorf("sign must be 1 or -1, got %d", spec.Sign)
	}

	used := make(map[slotKind]bool)
	switch kind {
	case KindToday, KindTomorrow, KindYesterday:
		// No payload.
	case KindOffsetDays, KindOffsetWeeks, KindOffsetMonths:
		if slots[slotNumber] {
			if spec.N != 0 {
				return buildSpec{}, fmt.Errorf("kind %q: literal n and {n} slot are mutually exclusive", spec.Kind)
			}
			used[slotNumber] = true
		} else {
			if spec.N == 0 {
				return buildSpec{}, fmt.Errorf("kind %q needs an {n} slot or a non-zero literal n", spec.Kind)
			}
			b.n = spec.N
		}
	case KindWeekdayNext, KindWeekdayLast:
		wd, err := weekdayPayload(spec, slots, used)
		if err != nil {
			return buildSpec{}, err
		}
		b.weekday = wd
	case KindWeekdayOfMonth:
		wd, err := weekdayPayload(spec, slots, used)
		if err != nil {
			return buildSpec{}, err
		}
		b.weekday = wd
		if slots[slotOrdinal] {
			if spec.Ordinal != 0 {
				return buildSpec{}, fmt.Errorf("kind %q: literal ordinal and {ordinal} slot are mutually exclusive", spec.Kind)
			}
			used[slotOrdinal] = true
		} else {
			if spec.Ordinal < 1 || spec.Ordinal > 5 {
				return buildSpec{}, fmt.Errorf("kind %q: ordinal must be 1-5", spec.Kind)
			}
			b.ordinal = spec.Ordinal
		}
		if slots[slotMonth] {
			if spec.Month != "" {
				return buildSpec{}, fmt.Errorf("kind %q: literal month and {month} slot are mutually exclusive", spec.Kind)
			}
			used[slotMonth] = true
		} else {
			mo, ok := parseMonthName(spec.Month)
			if !ok {
				return buildSpec{}, fmt.Errorf("kind %q needs a {month} slot or a month name, got %q", spec.Kind, spec.Month)
			}
			b.month = mo
		}
	}

	for slot := range slots {
		if !used[slot] {
			return buildSpec{}, fmt.Errorf("slot %s is not consumed by kind %q", slotName(slot), spec.Kind)
		}
	}
	return b, nil
}

func weekdayPayload(spec ExprSpec, slots, used map[slotKind]bool) (time.Weekday, error) {
	if slots[slotWeekday] {
		if spec.Weekday != "" {
			return 0, fmt.Errorf("kind %q: literal weekday and {weekday} slot are mutually exclusive", spec.Kind)
		}
		used[slotWeekday] = true
		return 0, nil
	}
	wd, ok := parseWeekdayName(spec.Weekday)
	if !ok {
		return 0, fmt.Errorf("kind %q needs a {weekday} slot or a weekday name, got %q", spec.Kind, spec.Weekday)
	}
	return wd, nil
}

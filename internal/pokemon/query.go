package pokemon

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"pokedex/pkg/models"
)

// StandardFields are the exact-match filter parameters, in evaluation order.
var StandardFields = []string{
	"height",
	"weight",
	"base_experience",
	"type1",
	"type2",
	"generation",
	"legendary",
}

// RangeFields are the base stats that accept <stat>_min / <stat>_max bounds.
var RangeFields = []string{"hp", "attack", "defense", "sp_atk", "sp_def", "speed"}

// Bounds holds the raw min/max parameters of one range filter. Values that do
// not parse as integers are ignored.
type Bounds struct {
	Min string
	Max string
}

// Filter is a parsed /api/pokemon request. Empty values mean "no constraint".
type Filter struct {
	Search   string
	Standard map[string]string
	Ranges   map[string]Bounds
}

// ParseFilter reads a Filter from query parameters.
func ParseFilter(q url.Values) Filter {
	f := Filter{
		Search:   q.Get("search"),
		Standard: make(map[string]string, len(StandardFields)),
		Ranges:   make(map[string]Bounds, len(RangeFields)),
	}
	for _, name := range StandardFields {
		if v := q.Get(name); v != "" {
			f.Standard[name] = v
		}
	}
	for _, stat := range RangeFields {
		b := Bounds{Min: q.Get(stat + "_min"), Max: q.Get(stat + "_max")}
		if b.Min != "" || b.Max != "" {
			f.Ranges[stat] = b
		}
	}
	return f
}

// Query returns the records matching every constraint of f, in load order.
// The result is never nil.
func (c *Catalog) Query(f Filter) []models.Pokemon {
	m := compile(f)
	out := make([]models.Pokemon, 0)
	for i := range c.records {
		if m.match(&c.records[i]) {
			out = append(out, c.records[i])
		}
	}
	return out
}

// Match reports whether p satisfies f.
func Match(p *models.Pokemon, f Filter) bool {
	return compile(f).match(p)
}

type predicate func(p *models.Pokemon) bool

type matcher []predicate

func (m matcher) match(p *models.Pokemon) bool {
	for _, pred := range m {
		if !pred(p) {
			return false
		}
	}
	return true
}

// compile turns f into a list of predicates so that query parameters are
// parsed once per request instead of once per record.
func compile(f Filter) matcher {
	var m matcher

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		m = append(m, func(p *models.Pokemon) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}

	for _, field := range StandardFields {
		v := f.Standard[field]
		if v == "" {
			continue
		}
		m = append(m, standardPredicate(field, v))
	}

	for _, stat := range RangeFields {
		b, ok := f.Ranges[stat]
		if !ok {
			continue
		}
		get := statGetter(stat)
		if lo, ok := parseBound(b.Min); ok {
			m = append(m, func(p *models.Pokemon) bool { return get(p) >= lo })
		}
		if hi, ok := parseBound(b.Max); ok {
			m = append(m, func(p *models.Pokemon) bool { return get(p) <= hi })
		}
	}

	return m
}

func standardPredicate(field, value string) predicate {
	switch {
	case field == "legendary":
		want := strings.EqualFold(value, "true")
		return func(p *models.Pokemon) bool { return p.Legendary == want }
	case field == "type2" && strings.EqualFold(value, "none"):
		return func(p *models.Pokemon) bool { return p.Type2 == "" }
	default:
		return func(p *models.Pokemon) bool {
			return strings.EqualFold(fieldString(p, field), value)
		}
	}
}

// fieldString renders a record field the way it appears in JSON output, which
// is what exact-match filters compare against.
func fieldString(p *models.Pokemon, field string) string {
	switch field {
	case "height":
		return formatNumber(p.Height)
	case "weight":
		return formatNumber(p.Weight)
	case "base_experience":
		return formatNumber(p.BaseExperience)
	case "type1":
		return p.Type1
	case "type2":
		return p.Type2
	case "generation":
		return p.Generation.String()
	case "legendary":
		return strconv.FormatBool(p.Legendary)
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func statGetter(stat string) func(p *models.Pokemon) int {
	switch stat {
	case "hp":
		return func(p *models.Pokemon) int { return p.HP }
	case "attack":
		return func(p *models.Pokemon) int { return p.Attack }
	case "defense":
		return func(p *models.Pokemon) int { return p.Defense }
	case "sp_atk":
		return func(p *models.Pokemon) int { return p.SpAtk }
	case "sp_def":
		return func(p *models.Pokemon) int { return p.SpDef }
	case "speed":
		return func(p *models.Pokemon) int { return p.Speed }
	default:
		return func(*models.Pokemon) int { return 0 }
	}
}

// parseBound parses a range bound. Unparsable bounds are dropped rather than
// rejected; integers outside the int range clamp to its nearest end.
func parseBound(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// ParseInt already returns math.MaxInt or math.MinInt on ErrRange.
	return int(n), true
}

package dialogue

import (
	"regexp"
	"strconv"
	"strings"

	"aerovoice/models"
)

// Flight disambiguation. Candidates are pre-filtered to the preferred cabin
// class; the cascade tries increasingly loose interpretations of the
// utterance and the first rule that yields a flight wins.

var (
	flightCode   = regexp.MustCompile(`\b([a-z]{1,4}\d{1,4})\b`)
	ordinalDigit = regexp.MustCompile(`\b(\d+)(?:st|nd|rd|th)?\b`)
	// Minutes are consumed but ignored; departures are compared by hour only.
	clockTime = regexp.MustCompile(`\b(\d{1,2})(?::\d{2})?\s*(am|pm)?\b`)
	sanitizer = regexp.MustCompile(`[^\w\s:.]`)

	morningWords   = regexp.MustCompile(`\bmorning\b|\bearly\b|\bforenoon\b`)
	afternoonWords = regexp.MustCompile(`\bafternoon\b|\bmid\b|\bnoon\b|\bmidday\b`)
	eveningWords   = regexp.MustCompile(`\bevening\b|\bnight\b|\blate\b|\beve\b`)
)

// cardinal entries ("one", "two") are skipped when the utterance also names a
// time of day: "the evening one" is a period choice, not position one.
var ordinalWords = []struct {
	re       *regexp.Regexp
	n        int
	cardinal bool
}{
	{regexp.MustCompile(`\bfirst\b`), 1, false},
	{regexp.MustCompile(`\bone\b`), 1, true},
	{regexp.MustCompile(`\bsecond\b`), 2, false},
	{regexp.MustCompile(`\btwo\b`), 2, true},
	{regexp.MustCompile(`\bthird\b`), 3, false},
	{regexp.MustCompile(`\bthree\b`), 3, true},
	{regexp.MustCompile(`\bfourth\b`), 4, false},
	{regexp.MustCompile(`\bfour\b`), 4, true},
	{regexp.MustCompile(`\bfifth\b`), 5, false},
	{regexp.MustCompile(`\bfive\b`), 5, true},
}

const (
	periodMorning   = "morning"
	periodAfternoon = "afternoon"
	periodEvening   = "evening"
)

// MatchFlight resolves exactly one flight from the candidate list, or nil.
// When the list is empty but the caller named a time of day, a placeholder
// unscheduled offer is synthesized so the dialogue can keep moving.
func MatchFlight(input string, candidates []models.FlightOffer, class string) *models.FlightOffer {
	raw := strings.ToLower(input)
	sanitized := strings.TrimSpace(sanitizer.ReplaceAllString(raw, ""))
	period := periodOf(raw)

	if len(candidates) == 0 {
		if period != "" {
			offer := SynthesizeOffer(period, class)
			return &offer
		}
		return nil
	}

	// 1) Explicit flight code, e.g. "SQ003".
	if m := flightCode.FindStringSubmatch(strings.ReplaceAll(sanitized, "-", "")); m != nil {
		code := strings.ToUpper(m[1])
		for i := range candidates {
			if strings.ToUpper(candidates[i].Flight) == code {
				return &candidates[i]
			}
		}
	}

	// 2) Ordinal or positional choice, bounds-checked.
	if m := ordinalDigit.FindStringSubmatch(sanitized); m != nil {
		if idx, err := strconv.Atoi(m[1]); err == nil && idx >= 1 && idx <= len(candidates) {
			return &candidates[idx-1]
		}
	}
	for _, ow := range ordinalWords {
		if ow.cardinal && period != "" {
			continue
		}
		if ow.re.MatchString(sanitized) && ow.n <= len(candidates) {
			return &candidates[ow.n-1]
		}
	}

	// 3) Explicit clock time: closest departure hour wins, earliest listed on
	// ties.
	if m := clockTime.FindStringSubmatch(sanitized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if m[2] == "pm" && hour < 12 {
			hour += 12
		}
		if m[2] == "am" && hour == 12 {
			hour = 0
		}
		var best *models.FlightOffer
		bestDiff := 24
		for i := range candidates {
			fh := candidates[i].DepartureHour()
			if fh < 0 {
				continue
			}
			diff := fh - hour
			if diff < 0 {
				diff = -diff
			}
			if diff < bestDiff {
				bestDiff = diff
				best = &candidates[i]
			}
		}
		if best != nil {
			return best
		}
	}

	// 4) Time-of-day keyword: strict word boundaries on the sanitized text
	// first, then plain substrings on the raw utterance to tolerate
	// transcription noise.
	switch {
	case morningWords.MatchString(sanitized):
		return pickByPeriod(candidates, periodMorning)
	case afternoonWords.MatchString(sanitized):
		return pickByPeriod(candidates, periodAfternoon)
	case eveningWords.MatchString(sanitized):
		return pickByPeriod(candidates, periodEvening)
	}
	if period != "" {
		return pickByPeriod(candidates, period)
	}

	return nil
}

// periodOf finds a time-of-day keyword anywhere in the raw utterance.
func periodOf(raw string) string {
	for _, k := range []string{"morning", "early", "forenoon"} {
		if strings.Contains(raw, k) {
			return periodMorning
		}
	}
	for _, k := range []string{"afternoon", "noon", "midday", "mid"} {
		if strings.Contains(raw, k) {
			return periodAfternoon
		}
	}
	for _, k := range []string{"evening", "night", "late", "eve"} {
		if strings.Contains(raw, k) {
			return periodEvening
		}
	}
	return ""
}

// pickByPeriod selects a candidate by departure-hour bucket (morning 5-11,
// afternoon 12-17, evening 18-4). When no candidate falls in the bucket the
// positional choice is used: first for morning, second for afternoon, last
// for evening.
func pickByPeriod(candidates []models.FlightOffer, period string) *models.FlightOffer {
	for i := range candidates {
		h := candidates[i].DepartureHour()
		if h < 0 {
			continue
		}
		switch period {
		case periodMorning:
			if h >= 5 && h < 12 {
				return &candidates[i]
			}
		case periodAfternoon:
			if h >= 12 && h < 18 {
				return &candidates[i]
			}
		case periodEvening:
			if h >= 18 || h < 5 {
				return &candidates[i]
			}
		}
	}
	switch period {
	case periodMorning:
		return &candidates[0]
	case periodAfternoon:
		if len(candidates) > 1 {
			return &candidates[1]
		}
		return &candidates[0]
	default:
		return &candidates[len(candidates)-1]
	}
}

// SynthesizeOffer builds the placeholder used when live inventory is absent
// but the caller committed to a time of day. The zero price means unpriced,
// not free.
func SynthesizeOffer(period, class string) models.FlightOffer {
	times := map[string]string{
		periodMorning:   "09:00",
		periodAfternoon: "14:00",
		periodEvening:   "19:00",
	}
	return models.FlightOffer{
		Flight:      "GEN-" + strings.ToUpper(period),
		Carrier:     "Scheduled",
		Time:        times[period],
		Class:       class,
		Price:       0,
		Unscheduled: true,
	}
}

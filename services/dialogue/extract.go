package dialogue

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Slot extractors. Each is a pure function over a lowercased utterance and
// returns the typed value plus an ok flag; a miss is recovered by the engine
// with the step's re-prompt.

// knownCities is the gazetteer of recognized destinations.
var knownCities = []string{
	"mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad", "pune",
	"singapore", "london", "dubai", "new york", "tokyo", "paris", "sydney",
}

var (
	cityStopwords = regexp.MustCompile(`\b(from|to|flying|going)\b`)
	numericDate   = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)
	digitSeq      = regexp.MustCompile(`\b(\d+)\b`)
	emailPattern  = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	nonDigit      = regexp.MustCompile(`[^0-9]`)
	// Multi-word fillers come first so alternation strips "this is" whole
	// instead of leaving "this" behind.
	nameFillers = regexp.MustCompile(`\b(i'm|i am|this is|it's|my|name|is|its|called)\b`)
)

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ExtractCity resolves a city name. Gazetteer matches win; otherwise the
// first two tokens left after stripping travel prepositions are used as-is.
func ExtractCity(input string) (string, bool) {
	cleaned := strings.TrimSpace(cityStopwords.ReplaceAllString(strings.ToLower(input), ""))
	for _, city := range knownCities {
		if strings.Contains(cleaned, city) {
			return titleCase(city), true
		}
	}
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return "", false
	}
	if len(words) > 2 {
		words = words[:2]
	}
	return titleCase(strings.Join(words, " ")), true
}

// ExtractDate resolves a travel date (YYYY-MM-DD) relative to now. Numeric
// day/month inputs are pinned to the fixed scheduling year.
func ExtractDate(input string, now time.Time) (string, bool) {
	input = strings.ToLower(input)
	switch {
	case strings.Contains(input, "today"):
		return now.Format("2006-01-02"), true
	case strings.Contains(input, "tomorrow"):
		return now.AddDate(0, 0, 1).Format("2006-01-02"), true
	case strings.Contains(input, "day after") || strings.Contains(input, "next"):
		return now.AddDate(0, 0, 2).Format("2006-01-02"), true
	}
	if m := numericDate.FindStringSubmatch(input); m != nil {
		day, month := m[1], m[2]
		if len(day) == 1 {
			day = "0" + day
		}
		if len(month) == 1 {
			month = "0" + month
		}
		return "2025-" + month + "-" + day, true
	}
	return "", false
}

var numberWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// ExtractNumber resolves a count from a number word or the first standalone
// digit sequence. Word checks run in ascending order so mixed inputs resolve
// deterministically.
func ExtractNumber(input string) (int, bool) {
	input = strings.ToLower(input)
	for i, word := range numberWords {
		if strings.Contains(input, word) {
			return i + 1, true
		}
	}
	if m := digitSeq.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// ExtractClass resolves the cabin class preference.
func ExtractClass(input string) (string, bool) {
	input = strings.ToLower(input)
	switch {
	case strings.Contains(input, "business"):
		return "Business", true
	case strings.Contains(input, "economy") || strings.Contains(input, "eco"):
		return "Economy", true
	}
	return "", false
}

// ExtractName resolves a passenger name: filler words go, single-letter
// fragments go, and the first two remaining tokens are title-cased.
func ExtractName(input string) (string, bool) {
	cleaned := strings.TrimSpace(nameFillers.ReplaceAllString(strings.ToLower(input), ""))
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	switch {
	case len(words) >= 2:
		return titleCase(strings.Join(words[:2], " ")), true
	case len(words) == 1:
		return titleCase(words[0]), true
	}
	return "", false
}

// ExtractEmail resolves an email address. Spoken addresses often arrive with
// spaces, so a whitespace-stripped fallback is accepted when it still carries
// both "@" and ".".
func ExtractEmail(input string) (string, bool) {
	if m := emailPattern.FindString(input); m != "" {
		return m, true
	}
	cleaned := strings.Join(strings.Fields(input), "")
	if strings.Contains(cleaned, "@") && strings.Contains(cleaned, ".") {
		return cleaned, true
	}
	return "", false
}

// ExtractPhone strips everything but digits and accepts exactly ten.
func ExtractPhone(input string) (string, bool) {
	digits := nonDigit.ReplaceAllString(input, "")
	if len(digits) == 10 {
		return digits, true
	}
	return "", false
}

// ExtractSeatPreference resolves window/aisle/middle.
func ExtractSeatPreference(input string) (string, bool) {
	input = strings.ToLower(input)
	switch {
	case strings.Contains(input, "window"):
		return "Window", true
	case strings.Contains(input, "aisle"):
		return "Aisle", true
	case strings.Contains(input, "middle") || strings.Contains(input, "center"):
		return "Middle", true
	}
	return "", false
}

var seatAssignments = map[string]string{
	"Window": "12A",
	"Aisle":  "12C",
	"Middle": "12B",
}

// AssignSeat maps a seat preference to a concrete seat number.
func AssignSeat(preference string) string {
	if seat, ok := seatAssignments[preference]; ok {
		return seat
	}
	return "12B"
}

var mealNegative = regexp.MustCompile(`\b(no|not|none)\b`)

// ExtractMeal resolves a meal preference. Negative phrasing is checked first,
// on word boundaries so "non-vegetarian" does not read as a refusal.
func ExtractMeal(input string) (string, bool) {
	lowered := strings.ToLower(input)
	if mealNegative.MatchString(lowered) {
		return "No Preference", true
	}
	switch {
	case strings.Contains(lowered, "vegan"):
		return "Vegan", true
	case strings.Contains(lowered, "veg") && !strings.Contains(lowered, "non"):
		return "Vegetarian", true
	case strings.Contains(lowered, "non") || strings.Contains(lowered, "meat") || strings.Contains(lowered, "chicken"):
		return "Non-Vegetarian", true
	}
	return "", false
}

// ExtractAssistance resolves a special-assistance kind.
func ExtractAssistance(input string) (string, bool) {
	input = strings.ToLower(input)
	switch {
	case strings.Contains(input, "wheelchair") || strings.Contains(input, "mobility"):
		return "Wheelchair", true
	case strings.Contains(input, "visual") || strings.Contains(input, "blind"):
		return "Visual Aid", true
	case strings.Contains(input, "hearing") || strings.Contains(input, "deaf"):
		return "Hearing Aid", true
	}
	return "", false
}

package reasoning

import (
	"regexp"
	"strings"

	"github.com/slotwise/putaway/internal/model"
)

// The three-field textual contract every backend response must follow.
// Parsing is tolerant of case and extraneous text, with an explicit default
// per field when a marker is missing.
var (
	zoneRe       = regexp.MustCompile(`(?i)ZONE:\s*([A-Z])`)
	confidenceRe = regexp.MustCompile(`(?i)CONFIDENCE:\s*(high|medium|low)`)
	reasoningRe  = regexp.MustCompile(`(?is)REASONING:\s*(.+?)(?:\n\n|\z)`)
)

// parsedResponse is the structured form of one backend reply.
type parsedResponse struct {
	Zone       string
	Confidence model.Confidence
	Reasoning  string
}

// parseResponse extracts the zone, confidence, and reasoning fields from a
// free-text reply. Missing zone defaults to the first eligible zone; missing
// confidence defaults to medium; missing reasoning defaults to the whole
// text. The zone is always clamped to the eligible set.
func parseResponse(text string, eligible []string) parsedResponse {
	p := parsedResponse{Confidence: model.ConfidenceMedium}

	zone := ""
	if m := zoneRe.FindStringSubmatch(text); m != nil {
		zone = strings.ToUpper(m[1])
	}
	p.Zone = clampZone(zone, eligible)

	if m := confidenceRe.FindStringSubmatch(text); m != nil {
		p.Confidence = model.Confidence(strings.ToLower(m[1]))
	}

	reasoning := text
	if m := reasoningRe.FindStringSubmatch(text); m != nil {
		reasoning = m[1]
	}
	p.Reasoning = strings.Join(strings.Fields(reasoning), " ")

	return p
}

// clampZone forces a (possibly hallucinated or absent) zone into the
// eligible set: a zone outside the set becomes the first eligible zone. The
// provider never returns a zone the safety stage did not approve.
func clampZone(zone string, eligible []string) string {
	for _, id := range eligible {
		if id == zone {
			return zone
		}
	}
	if len(eligible) == 0 {
		return ""
	}
	return eligible[0]
}

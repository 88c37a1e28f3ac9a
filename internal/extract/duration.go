package extract

import (
	"regexp"
	"strings"
)

// durationPatterns describe how trial summaries phrase the overall study
// duration. Tried in order; the first match wins and group 1 carries the
// quantity plus unit.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`study duration (?:is|will be|of) (?:approximately |about |up to )?(\d+(?:\.\d+)?\s(?:years?|months?|weeks?))`),
	regexp.MustCompile(`duration of (?:approximately |about |up to )?(\d+(?:\.\d+)?\s(?:years?|months?|weeks?))`),
	regexp.MustCompile(`(?:last|continue|run) for (?:approximately |about |up to )?(\d+(?:\.\d+)?\s(?:years?|months?|weeks?))`),
	regexp.MustCompile(`follow(?:ed|-up)? (?:for|of) (?:approximately |about |up to )?(\d+(?:\.\d+)?\s(?:years?|months?|weeks?))`),
}

// resolveDuration tries three sources in priority order: the explicit
// start/completion date pair, duration phrases in the brief summary, and
// finally the primary outcome time frame.
func resolveDuration(c *recordContext) string {
	start := c.rec.str("protocolSection", "statusModule", "startDateStruct", "date")
	end := c.rec.str("protocolSection", "statusModule", "completionDateStruct", "date")
	if start != "" && end != "" {
		return "From " + start + " to " + end
	}

	summary := c.rec.str("protocolSection", "descriptionModule", "briefSummary")
	if summary != "" {
		for _, p := range durationPatterns {
			if m := p.FindStringSubmatch(summary); m != nil {
				return m[1]
			}
		}
	}

	primaries := c.rec.objects("protocolSection", "outcomesModule", "primaryOutcomes")
	if len(primaries) > 0 {
		if tf := primaries[0].str("timeFrame"); tf != "" {
			// The literal " months" replacement doubles the space after
			// the number ("59  months"); downstream consumers expect that
			// exact text, so keep it.
			tf = strings.ReplaceAll(tf, "Approximate Maximum ", "")
			tf = strings.ReplaceAll(tf, "Months", " months")
			return tf
		}
	}

	return ""
}

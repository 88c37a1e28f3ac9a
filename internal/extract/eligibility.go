package extract

import (
	"regexp"
	"strings"
)

// exclusionMarker conventionally separates the inclusion and exclusion
// halves of the free-text eligibility block.
const exclusionMarker = "Exclusion Criteria:"

// splitEligibility splits the eligibility text exactly once on the literal
// marker. Text with no marker is all inclusion. The returned segments are
// raw: concatenating inclusion + marker + exclusion recovers the original.
func splitEligibility(text string) (inclusion, exclusion string) {
	i := strings.Index(text, exclusionMarker)
	if i < 0 {
		return text, ""
	}
	return text[:i], text[i+len(exclusionMarker):]
}

// cleanSegment normalizes one eligibility segment for display: drops the
// literal "Inclusion Criteria:" header, rewrites markdown bullets into
// line-break-joined dash bullets, and trims the ends.
func cleanSegment(s string) string {
	s = strings.Replace(s, "Inclusion Criteria:", "", 1)
	s = strings.ReplaceAll(s, "\n* ", "<br>- ")
	return strings.TrimSpace(s)
}

func resolveInclusionCriteria(c *recordContext) string {
	return cleanSegment(c.inclusion)
}

func resolveExclusionCriteria(c *recordContext) string {
	return cleanSegment(c.exclusion)
}

// firstMatch tries the given patterns in order against text and returns
// the first match in document order, cleaned of bullet markers. The trial
// text is highly templated, so patterns match literal phrasing
// case-sensitively; callers supply explicit case alternations where the
// source text varies.
func firstMatch(text, fallback string, patterns ...*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindString(text); m != "" {
			return trimBullet(m)
		}
	}
	return fallback
}

// trimBullet strips a leading markdown bullet marker and surrounding
// whitespace from a matched line.
func trimBullet(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "* ")
	return strings.TrimSpace(s)
}

// hasCondition reports whether the controlled conditions list contains the
// exact target string.
func hasCondition(rec Record, target string) bool {
	for _, cond := range rec.strings("protocolSection", "conditionsModule", "conditions") {
		if cond == target {
			return true
		}
	}
	return false
}

var bmiPattern = regexp.MustCompile(`(?:BMI|[Bb]ody [Mm]ass [Ii]ndex)[^\n]*`)

func resolveBMI(c *recordContext) string {
	return firstMatch(c.inclusion, NotStated, bmiPattern)
}

func resolveT2DMIncluded(c *recordContext) string {
	if hasCondition(c.rec, "Type 2 Diabetes") || strings.Contains(c.inclusion, "type 2 diabetes") {
		return "Yes"
	}
	return NotStated
}

// resolveDiabetesExcluded inspects the exclusion segment for either
// diabetes type. The "No." default is deliberate: an exclusion list that
// never mentions diabetes is evidence of non-exclusion, unlike the
// inclusion-side fields.
func resolveDiabetesExcluded(c *recordContext) string {
	t1 := strings.Contains(c.exclusion, "Type 1 diabetes")
	t2 := strings.Contains(c.exclusion, "Type 2 diabetes")
	switch {
	case t1 && t2:
		return "Type 1 and type 2 diabetes mellitus excluded."
	case t1:
		return "Type 1 diabetes mellitus excluded."
	case t2:
		return "Type 2 diabetes mellitus excluded."
	default:
		return "No."
	}
}

func resolveCKDIncluded(c *recordContext) string {
	if hasCondition(c.rec, "Chronic Kidney Disease") || strings.Contains(c.inclusion, "chronic kidney disease") {
		return "Yes"
	}
	return "No"
}

var ckdDefinitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`eGFR[^\n]*`),
	regexp.MustCompile(`(?:[Cc]hronic kidney disease|CKD)[^\n]*`),
}

func resolveCKDDefinition(c *recordContext) string {
	return firstMatch(c.inclusion, NotStated, ckdDefinitionPatterns...)
}

func resolveHFpEFIncluded(c *recordContext) string {
	if hasCondition(c.rec, "Heart Failure With Preserved Ejection Fraction") ||
		strings.Contains(c.inclusion, "preserved ejection fraction") {
		return "Yes"
	}
	return NotStated
}

// The LVEF shorthand is tried before the spelled-out phrasings so a
// criterion naming both yields the numeric cutoff.
var hfpefDefinitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`LVEF[^\n]*`),
	regexp.MustCompile(`[Ll]eft ventricular ejection fraction[^\n]*`),
	regexp.MustCompile(`[Ee]jection fraction[^\n]*`),
}

func resolveHFpEFDefinition(c *recordContext) string {
	return firstMatch(c.inclusion, NotStated, hfpefDefinitionPatterns...)
}

var cvdDefinitionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[Ee]stablished cardiovascular disease[^\n]*`),
	regexp.MustCompile(`(?:prior|history of) (?:myocardial infarction|stroke|peripheral arterial disease)[^\n]*`),
}

func resolveCVDDefinition(c *recordContext) string {
	return firstMatch(c.inclusion, NotStated, cvdDefinitionPatterns...)
}

var nyhaPattern = regexp.MustCompile(`NYHA [Cc]lass[^\n]*`)

// NYHA class may be an inclusion requirement or an exclusion bound; the
// inclusion segment is searched first.
func resolveNYHAClass(c *recordContext) string {
	if m := nyhaPattern.FindString(c.inclusion); m != "" {
		return trimBullet(m)
	}
	return firstMatch(c.exclusion, NotMentioned, nyhaPattern)
}

var htnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[^\n]*[Uu]ncontrolled hypertension[^\n]*`),
	regexp.MustCompile(`[^\n]*(?:systolic blood pressure|SBP)[^\n]*`),
}

func resolveHTNCutoffs(c *recordContext) string {
	return firstMatch(c.exclusion, NotMentioned, htnPatterns...)
}

var miStrokePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[^\n]*(?:[Mm]yocardial infarction|[Ss]troke)[^\n]*(?:within|in the (?:past|last))[^\n]*`),
	regexp.MustCompile(`[^\n]*(?:[Mm]yocardial infarction|[Ss]troke)[^\n]*`),
}

func resolveMIStrokeExclusion(c *recordContext) string {
	return firstMatch(c.exclusion, NotMentioned, miStrokePatterns...)
}

var revascPattern = regexp.MustCompile(`[^\n]*(?:[Rr]evascularization|PCI|CABG)[^\n]*`)

func resolveRevascExclusion(c *recordContext) string {
	return firstMatch(c.exclusion, NotMentioned, revascPattern)
}

var liverPattern = regexp.MustCompile(`[^\n]*(?:[Hh]epatic|[Ll]iver)[^\n]*`)

func resolveLiverExclusion(c *recordContext) string {
	return firstMatch(c.exclusion, NotMentioned, liverPattern)
}

var renalPattern = regexp.MustCompile(`[^\n]*(?:[Rr]enal|eGFR|[Dd]ialysis)[^\n]*`)

func resolveRenalExclusion(c *recordContext) string {
	return firstMatch(c.exclusion, NotMentioned, renalPattern)
}

package extract

import (
	"log"
	"strconv"
	"strings"

	"trialscope/internal/domain"
)

// Sentinel values substituted when a field cannot be derived. The two
// phrasings are both used deliberately: direct-lookup and inclusion-side
// fields say "stated", exclusion-side pattern fields say "mentioned".
const (
	NotStated    = "Not explicitly stated."
	NotMentioned = "Not explicitly mentioned."
)

// recordContext carries the parsed record plus the eligibility segments,
// which several resolvers share.
type recordContext struct {
	rec       Record
	inclusion string // raw text before the "Exclusion Criteria:" marker
	exclusion string // raw text after the marker
}

// resolver derives one field's formatted value from a record context.
type resolver func(c *recordContext) string

// fieldRule binds a catalog field to its resolver. The rules table is
// evaluated independently per field, in catalog order.
type fieldRule struct {
	name    domain.FieldName
	resolve resolver
}

var rules = []fieldRule{
	{domain.FieldReference, resolveReference},
	{domain.FieldStudyID, resolveStudyID},
	{domain.FieldMolecule, resolveMolecule},
	{domain.FieldMOA, resolveMOA},
	{domain.FieldPhase, resolvePhase},
	{domain.FieldSponsor, resolveSponsor},
	{domain.FieldEnrollment, resolveEnrollment},
	{domain.FieldStudyDesign, resolveStudyDesign},
	{domain.FieldDuration, resolveDuration},
	{domain.FieldTreatmentArms, resolveTreatmentArms},
	{domain.FieldPrimaryEndpoint, resolvePrimaryEndpoint},
	{domain.FieldKeySecondary, resolveKeySecondary},
	{domain.FieldOtherSecondary, resolveOtherSecondary},
	{domain.FieldExploratory, resolveExploratory},
	{domain.FieldSubstudies, resolveSubstudies},
	{domain.FieldInclusionCriteria, resolveInclusionCriteria},
	{domain.FieldExclusionCriteria, resolveExclusionCriteria},
	{domain.FieldAge, resolveAge},
	{domain.FieldBMI, resolveBMI},
	{domain.FieldT2DMIncluded, resolveT2DMIncluded},
	{domain.FieldDiabetesExcluded, resolveDiabetesExcluded},
	{domain.FieldCKDIncluded, resolveCKDIncluded},
	{domain.FieldCKDDefinition, resolveCKDDefinition},
	{domain.FieldHFpEFIncluded, resolveHFpEFIncluded},
	{domain.FieldHFpEFDefinition, resolveHFpEFDefinition},
	{domain.FieldCVDDefinition, resolveCVDDefinition},
	{domain.FieldNYHAClass, resolveNYHAClass},
	{domain.FieldHTNCutoffs, resolveHTNCutoffs},
	{domain.FieldMIStrokeExclusion, resolveMIStrokeExclusion},
	{domain.FieldRevascExclusion, resolveRevascExclusion},
	{domain.FieldLiverExclusion, resolveLiverExclusion},
	{domain.FieldRenalExclusion, resolveRenalExclusion},
}

// Extract maps one trial record to the full 32-field catalog. Missing
// sections degrade to each field's sentinel default; Extract never fails
// for a well-formed but incomplete record.
func Extract(rec Record) domain.ExtractionResult {
	if rec.object("protocolSection") == nil {
		log.Printf("extract.Extract: record has no protocolSection, extracting with defaults")
	}
	if rec.object("derivedSection") == nil {
		log.Printf("extract.Extract: record has no derivedSection, extracting with defaults")
	}

	inc, exc := splitEligibility(rec.str("protocolSection", "eligibilityModule", "eligibilityCriteria"))
	c := &recordContext{rec: rec, inclusion: inc, exclusion: exc}

	result := make(domain.ExtractionResult, len(rules))
	for _, rule := range rules {
		result[rule.name] = rule.resolve(c)
	}
	return result
}

func resolveReference(c *recordContext) string {
	return c.rec.str("protocolSection", "identificationModule", "nctId")
}

// Study ID prefers the sponsor's protocol identifier and falls back to the
// registry NCT number.
func resolveStudyID(c *recordContext) string {
	if id := c.rec.str("protocolSection", "identificationModule", "orgStudyIdInfo", "id"); id != "" {
		return id
	}
	return c.rec.str("protocolSection", "identificationModule", "nctId")
}

// resolveMolecule joins the first intervention's name with the first
// sentence of its description. Both parts must be present.
func resolveMolecule(c *recordContext) string {
	ivs := c.rec.objects("protocolSection", "armsInterventionsModule", "interventions")
	if len(ivs) == 0 {
		return ""
	}
	name := ivs[0].str("name")
	desc := ivs[0].str("description")
	if name == "" || desc == "" {
		return ""
	}
	if i := strings.Index(desc, "."); i >= 0 {
		desc = desc[:i+1]
	}
	return name + ": " + desc
}

// MOA comes from the curated intervention mesh terms, falling back to the
// broader ancestor terms.
func resolveMOA(c *recordContext) string {
	if terms := meshTerms(c.rec, "meshes"); len(terms) > 0 {
		return strings.Join(terms, ", ")
	}
	if terms := meshTerms(c.rec, "ancestors"); len(terms) > 0 {
		return strings.Join(terms, ", ")
	}
	return NotStated
}

func meshTerms(rec Record, key string) []string {
	entries := rec.objects("derivedSection", "interventionBrowseModule", key)
	var terms []string
	for _, e := range entries {
		if t := e.str("term"); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func resolvePhase(c *recordContext) string {
	return strings.Join(c.rec.strings("protocolSection", "designModule", "phases"), ", ")
}

func resolveSponsor(c *recordContext) string {
	return c.rec.str("protocolSection", "sponsorCollaboratorsModule", "leadSponsor", "name")
}

func resolveEnrollment(c *recordContext) string {
	n, ok := c.rec.num("protocolSection", "designModule", "enrollmentInfo", "count")
	if !ok {
		return ""
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func resolveStudyDesign(c *recordContext) string {
	info := c.rec.object("protocolSection", "designModule", "designInfo")
	if info == nil {
		return ""
	}
	var parts []string
	if v := info.str("allocation"); v != "" {
		parts = append(parts, "Allocation: "+v)
	}
	if v := info.str("interventionModel"); v != "" {
		parts = append(parts, "Model: "+v)
	}
	if v := info.str("maskingInfo", "masking"); v != "" {
		parts = append(parts, "Masking: "+v)
	}
	if v := info.str("primaryPurpose"); v != "" {
		parts = append(parts, "Purpose: "+v)
	}
	return strings.Join(parts, ", ")
}

func resolveAge(c *recordContext) string {
	min := c.rec.str("protocolSection", "eligibilityModule", "minimumAge")
	max := c.rec.str("protocolSection", "eligibilityModule", "maximumAge")
	switch {
	case min != "" && max != "":
		return min + " to " + max
	case min != "":
		return min + " and older"
	case max != "":
		return "Up to " + max
	default:
		return ""
	}
}

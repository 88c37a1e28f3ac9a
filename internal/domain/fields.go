package domain

// FieldName identifies one extractable trial metadata field.
type FieldName string

// The full field catalog. Order here defines the default display and
// export order.
const (
	FieldReference            FieldName = "Reference"
	FieldStudyID              FieldName = "Study ID"
	FieldMolecule             FieldName = "Molecule (Intervention & Route)"
	FieldMOA                  FieldName = "MOA"
	FieldPhase                FieldName = "Phase"
	FieldSponsor              FieldName = "Sponsor"
	FieldEnrollment           FieldName = "Enrollment"
	FieldStudyDesign          FieldName = "Study Design"
	FieldDuration             FieldName = "Duration"
	FieldTreatmentArms        FieldName = "Treatment Arms"
	FieldPrimaryEndpoint      FieldName = "Primary Endpoint"
	FieldKeySecondary         FieldName = "Key Secondary Endpoints"
	FieldOtherSecondary       FieldName = "Other Secondary Endpoints"
	FieldExploratory          FieldName = "Exploratory Endpoints"
	FieldSubstudies           FieldName = "Substudies"
	FieldInclusionCriteria    FieldName = "Inclusion Criteria"
	FieldExclusionCriteria    FieldName = "Exclusion Criteria"
	FieldAge                  FieldName = "Age"
	FieldBMI                  FieldName = "BMI"
	FieldT2DMIncluded         FieldName = "T2DM Included?"
	FieldDiabetesExcluded     FieldName = "T2DM and/or T1DM excluded?"
	FieldCKDIncluded          FieldName = "CKD Included?"
	FieldCKDDefinition        FieldName = "CKD definition"
	FieldHFpEFIncluded        FieldName = "HFpEF Included?"
	FieldHFpEFDefinition      FieldName = "HFpEF definition"
	FieldCVDDefinition        FieldName = "Established CVD definition"
	FieldNYHAClass            FieldName = "NYHA class"
	FieldHTNCutoffs           FieldName = "HTN cutoffs"
	FieldMIStrokeExclusion    FieldName = "Recent MI/stroke exclusion"
	FieldRevascExclusion      FieldName = "Recent revascularization exclusion"
	FieldLiverExclusion       FieldName = "Liver disease exclusion"
	FieldRenalExclusion       FieldName = "Renal disease exclusion"
)

// catalog is the ordered list of all 32 extractable fields.
var catalog = []FieldName{
	FieldReference,
	FieldStudyID,
	FieldMolecule,
	FieldMOA,
	FieldPhase,
	FieldSponsor,
	FieldEnrollment,
	FieldStudyDesign,
	FieldDuration,
	FieldTreatmentArms,
	FieldPrimaryEndpoint,
	FieldKeySecondary,
	FieldOtherSecondary,
	FieldExploratory,
	FieldSubstudies,
	FieldInclusionCriteria,
	FieldExclusionCriteria,
	FieldAge,
	FieldBMI,
	FieldT2DMIncluded,
	FieldDiabetesExcluded,
	FieldCKDIncluded,
	FieldCKDDefinition,
	FieldHFpEFIncluded,
	FieldHFpEFDefinition,
	FieldCVDDefinition,
	FieldNYHAClass,
	FieldHTNCutoffs,
	FieldMIStrokeExclusion,
	FieldRevascExclusion,
	FieldLiverExclusion,
	FieldRenalExclusion,
}

// Catalog returns a copy of the ordered field catalog.
func Catalog() []FieldName {
	out := make([]FieldName, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogSize is the number of fields in the catalog.
const CatalogSize = 32

// knownFields maps every catalog field to true for membership checks.
var knownFields = func() map[FieldName]bool {
	m := make(map[FieldName]bool, len(catalog))
	for _, f := range catalog {
		m[f] = true
	}
	return m
}()

// KnownField reports whether name is part of the catalog.
func KnownField(name FieldName) bool {
	return knownFields[name]
}

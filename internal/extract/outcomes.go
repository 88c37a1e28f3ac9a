package extract

import "strings"

// itemSeparator joins formatted list items in multi-item fields.
const itemSeparator = "<br><br>"

// formatOutcome renders one outcome as a bolded title with optional
// description and time frame.
func formatOutcome(o Record) string {
	var b strings.Builder
	b.WriteString("<b>")
	b.WriteString(o.str("measure"))
	b.WriteString("</b>")
	if d := o.str("description"); d != "" {
		b.WriteString(": ")
		b.WriteString(d)
	}
	if tf := o.str("timeFrame"); tf != "" {
		b.WriteString(" (Time Frame: ")
		b.WriteString(tf)
		b.WriteString(")")
	}
	return b.String()
}

func formatOutcomes(outcomes []Record, empty string) string {
	if len(outcomes) == 0 {
		return empty
	}
	items := make([]string, len(outcomes))
	for i, o := range outcomes {
		items[i] = formatOutcome(o)
	}
	return strings.Join(items, itemSeparator)
}

// isKeySecondary classifies a secondary outcome as "key" when its title
// names a time-to-event measure. The measure must be checked for presence
// before any text matching.
func isKeySecondary(o Record) bool {
	measure := o.str("measure")
	if measure == "" {
		return false
	}
	lower := strings.ToLower(measure)
	return strings.Contains(lower, "time to") || strings.Contains(lower, "first occurrence")
}

// partitionSecondary splits the secondary outcomes into key and other.
// Outcomes with no title belong to neither partition.
func partitionSecondary(rec Record) (key, other []Record) {
	for _, o := range rec.objects("protocolSection", "outcomesModule", "secondaryOutcomes") {
		if o.str("measure") == "" {
			continue
		}
		if isKeySecondary(o) {
			key = append(key, o)
		} else {
			other = append(other, o)
		}
	}
	return key, other
}

func resolvePrimaryEndpoint(c *recordContext) string {
	return formatOutcomes(c.rec.objects("protocolSection", "outcomesModule", "primaryOutcomes"), NotStated)
}

func resolveKeySecondary(c *recordContext) string {
	key, _ := partitionSecondary(c.rec)
	return formatOutcomes(key, "No key secondary endpoints listed.")
}

func resolveOtherSecondary(c *recordContext) string {
	_, other := partitionSecondary(c.rec)
	return formatOutcomes(other, "No other secondary endpoints listed.")
}

func resolveExploratory(c *recordContext) string {
	return formatOutcomes(c.rec.objects("protocolSection", "outcomesModule", "otherOutcomes"), "No exploratory endpoints listed.")
}

// resolveSubstudies collects outcomes whose title marks them as part of a
// substudy, across both the secondary and exploratory lists.
func resolveSubstudies(c *recordContext) string {
	var subs []Record
	for _, list := range [][]Record{
		c.rec.objects("protocolSection", "outcomesModule", "secondaryOutcomes"),
		c.rec.objects("protocolSection", "outcomesModule", "otherOutcomes"),
	} {
		for _, o := range list {
			measure := o.str("measure")
			if measure == "" {
				continue
			}
			lower := strings.ToLower(measure)
			if strings.Contains(lower, "substudy") || strings.Contains(lower, "sub-study") {
				subs = append(subs, o)
			}
		}
	}
	if len(subs) == 0 {
		return "No substudies listed."
	}
	items := make([]string, len(subs))
	for i, o := range subs {
		item := "<b>" + o.str("measure") + "</b>"
		if d := o.str("description"); d != "" {
			item += ": " + d
		}
		items[i] = item
	}
	return strings.Join(items, itemSeparator)
}

// resolveTreatmentArms renders each arm group as a bolded label plus
// description, with its intervention names appended when listed.
func resolveTreatmentArms(c *recordContext) string {
	arms := c.rec.objects("protocolSection", "armsInterventionsModule", "armGroups")
	if len(arms) == 0 {
		return "No treatment arms listed."
	}
	items := make([]string, len(arms))
	for i, arm := range arms {
		var b strings.Builder
		b.WriteString("<b>")
		b.WriteString(arm.str("label"))
		b.WriteString("</b>")
		if d := arm.str("description"); d != "" {
			b.WriteString(": ")
			b.WriteString(d)
		}
		if names := arm.strings("interventionNames"); len(names) > 0 {
			b.WriteString(" (Interventions: ")
			b.WriteString(strings.Join(names, ", "))
			b.WriteString(")")
		}
		items[i] = b.String()
	}
	return strings.Join(items, itemSeparator)
}

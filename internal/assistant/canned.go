package assistant

import "fmt"

// cannedResponses are the static mock-mode templates, one per feature. The
// content never varies between calls, so mock runs are reproducible.
var cannedResponses = map[Feature]string{
	FeatureGenerateSummary: "Results-driven professional with a track record of delivering reliable software. " +
		"Combines strong technical depth with clear communication, and thrives in collaborative, fast-moving teams.",
	FeatureRewriteBullets: "Delivered measurable improvements across core product workflows\n" +
		"Led cross-functional initiatives that shipped on schedule\n" +
		"Streamlined processes, reducing manual effort for the whole team",
	FeatureATSAnalysis: `{"score": 68, "strengths": ["Relevant technical skills listed", "Clear section structure"], ` +
		`"weaknesses": ["Few quantified achievements", "Summary could be more specific"], ` +
		`"suggestions": ["Add metrics to experience bullets", "Tailor the summary to the target role"]}`,
	FeatureChat: "That's a great question. Focus on tailoring your resume to each posting: mirror the job's " +
		"keywords, lead with measurable outcomes, and keep it to one page if you have under ten years of experience.",
	FeatureCoverLetter: "Dear Hiring Team,\n\nI am excited to apply for this role. My background aligns closely with " +
		"your needs, and I have a history of delivering results in similar environments. I would welcome the chance " +
		"to bring that experience to your team.\n\nSincerely,\nYour Candidate",
	FeatureSkillGap: "cloud architecture - complete a hands-on certification project\n" +
		"system design - practice designing systems end to end\n" +
		"stakeholder communication - volunteer to present project updates",
}

// cannedResponse returns the static template for a feature
func cannedResponse(feature Feature) (string, error) {
	response, ok := cannedResponses[feature]
	if !ok {
		return "", fmt.Errorf("no canned response for feature %q", feature)
	}
	return response, nil
}

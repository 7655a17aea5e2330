package subject

// FeatureA, FeatureB, and FeatureC name the three independent features whose
// combinations the set-membership demonstration enumerates.
const (
	FeatureA = "Feature A"
	FeatureB = "Feature B"
	FeatureC = "Feature C"
)

// ActiveFeatures returns the names of the enabled features, always in the
// order A, B, C. No features enabled yields an empty result.
func ActiveFeatures(featureA, featureB, featureC bool) []string {
	var active []string
	if featureA {
		active = append(active, FeatureA)
	}
	if featureB {
		active = append(active, FeatureB)
	}
	if featureC {
		active = append(active, FeatureC)
	}
	return active
}

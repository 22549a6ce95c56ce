package classifier

// Blend weights for the hybrid domain score. The Naive Bayes posterior
// carries most of the weight; cosine similarity against the training matrix
// contributes the rest.
const (
	nbBlendWeight     = 0.7
	cosineBlendWeight = 0.3
)

// Default confidence floors for the two-tier unknown policy. Below
// unknownFloor the result carries no alternatives at all; between the floors
// the label stays "unknown" but the top candidates are exposed; at or above
// commitFloor the best domain is committed. Config can override both.
const (
	unknownFloor = 0.20
	commitFloor  = 0.45
)

// Subdomain blend weights. When the per-domain model is unavailable the
// keyword score takes the full weight.
const (
	subdomainNBWeight      = 0.7
	subdomainKeywordWeight = 0.3
)

// laplaceAlpha is the additive smoothing constant for Naive Bayes counts.
const laplaceAlpha = 1.0

// maxAlternatives caps the runner-up predictions exposed on a result.
const maxAlternatives = 3

// minTrainingClasses is the smallest label set Naive Bayes can fit.
const minTrainingClasses = 2

// subdomainLowConfidence is reported with the "general" fallback when no
// subdomain scores above zero.
const subdomainLowConfidence = 0.30

// Feedback adjustment bounds. Positive history adds at most
// maxPositiveAdjustment; negative history subtracts at most
// maxNegativeAdjustment. Adjusted confidence is clamped to [0, 1].
const (
	maxPositiveAdjustment  = 0.3
	positiveAdjustmentRate = 0.4
	maxNegativeAdjustment  = 0.2
	negativeAdjustmentRate = 0.3
	feedbackNeutralRatio   = 0.5
)

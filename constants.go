package interpolation

// Generator defaults
const (
	// Generated samples are drawn uniformly from [GenerateMin, GenerateMax).
	GenerateMin = -10.0
	GenerateMax = 10.0
)

// Batch evaluation constants
const (
	// minSamplePoints is the smallest grid Sample accepts (both endpoints).
	minSamplePoints = 2

	// minParallelChunk is the smallest slice of queries handed to one
	// worker in EvaluateParallel. Smaller inputs run on the caller's
	// goroutine.
	minParallelChunk = 1024

	// ctxCheckInterval is how many queries a batch evaluates between
	// context checks.
	ctxCheckInterval = 256
)

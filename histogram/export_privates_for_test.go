package histogram

// PlanWorkers exposes the worker planning policy to external tests.
func PlanWorkers(n, cells int, opts ...Option) int {
	return gatherOptions(opts...).plan(n, cells)
}

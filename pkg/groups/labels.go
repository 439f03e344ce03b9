package groups

import "github.com/dmitrymomot/datakit/pkg/logger"

// Labels allocates length units and, unless WithoutShuffle is given, returns
// the labels in uniformly random order.
func Labels(length int, alloc Allocator, opts ...Option) ([]int, error) {
	return labels(length, alloc, newConfig(opts))
}

func labels(length int, alloc Allocator, cfg *config) ([]int, error) {
	out, err := alloc.Allocate(length)
	if err != nil {
		return nil, err
	}
	if cfg.shuffle {
		cfg.shuffleInts(out)
	}
	cfg.log.Debug("allocated labels",
		logger.Method(string(alloc.Method())),
		logger.Rows(length),
		logger.Groups(alloc.NumGroups(length)),
	)
	return out, nil
}

package link

import (
	"context"
	"fmt"

	"github.com/scopelink/scopelink/pkg/commands/internal"
	"github.com/scopelink/scopelink/pkg/logging"
	"github.com/scopelink/scopelink/pkg/types"
)

// linkExplicit registers every package matching the argument and links
// it into each of its direct consumers through the package manager. A
// match nobody depends on is skipped untouched. Failures are fatal on
// this path: the first failed registration or consumer relink aborts
// the remaining work and unwinds. The unlink direction deliberately
// does the opposite and keeps going.
func linkExplicit(ctx context.Context, env *internal.Env, rawArg string, dryRun bool) (*Result, error) {
	logger := logging.GetLogger("commands.link")
	result := &Result{Mode: "explicit", DryRun: dryRun}

	sel, err := internal.SelectTargets(env, rawArg)
	if err != nil {
		return nil, err
	}

	var linked []string
	var touched []types.Package
	seen := make(map[string]bool)

	for _, target := range sel.Targets {
		source := target.Package
		if len(target.Consumers) == 0 {
			logger.Debug().Str("package", source.Name).Msg("No consumers depend on package, skipping")
			continue
		}

		logger.Info().
			Str("package", source.Name).
			Int("consumers", len(target.Consumers)).
			Msg("Linking package into consumers")

		if !dryRun {
			if err := env.Client.RegisterGlobal(ctx, source.Dir); err != nil {
				return nil, err
			}
		}

		consumers := make([]string, 0, len(target.Consumers))
		for _, consumer := range target.Consumers {
			if !dryRun {
				if err := env.Client.LinkIntoConsumer(ctx, consumer.Dir, source.Name); err != nil {
					return nil, err
				}
			}
			consumers = append(consumers, consumer.Name)
			if !seen[consumer.Dir] {
				seen[consumer.Dir] = true
				touched = append(touched, consumer)
			}
		}

		result.Packages = append(result.Packages, PackageResult{
			Name:      source.Name,
			Directory: source.Dir,
			Consumers: consumers,
		})
		linked = append(linked, source.Name)
	}

	result.Success = true
	if len(linked) == 0 {
		result.Message = fmt.Sprintf("No consumers depend on %s, nothing to link", rawArg)
		return result, nil
	}

	// Final fan-out: one lock regeneration per touched consumer, soft.
	if !dryRun {
		for _, consumer := range touched {
			if err := env.Client.RegenerateLockfile(ctx, consumer.Dir); err != nil {
				logger.Warn().Err(err).Str("consumer", consumer.Name).Msg("Lockfile regeneration failed")
			}
		}
	}

	if dryRun {
		result.Message = internal.PlannedSummary("link", linked)
	} else {
		result.Message = internal.SuccessSummary("linked", linked)
	}

	logger.Info().Int("packages", len(linked)).Msg("Link command finished")
	return result, nil
}
